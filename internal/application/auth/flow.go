package auth

import (
	"context"
	"sync"

	"github.com/panel-gateway/internal/domain"
)

// State of the login flow.
type State string

const (
	// StateIdle: email entry step, nothing requested yet.
	StateIdle State = "idle"
	// StateAwaitingCode: a code was sent, code entry step.
	StateAwaitingCode State = "awaiting_code"
	// StateVerifying: a verification call is in flight.
	StateVerifying State = "verifying"
	// StateAuthenticated: terminal success; the credential is stored.
	StateAuthenticated State = "authenticated"
)

// Flow drives the login state machine on top of the relay service:
//
//	Idle → AwaitingCode → Verifying → Authenticated
//
// A rejected request keeps the flow on the email step; a rejected
// verification returns to AwaitingCode so the user can retry. A second
// trigger while a step is in flight fails with domain.ErrBusy instead of
// racing the first one.
type Flow struct {
	svc   Service
	creds *CredentialStore

	mu       sync.Mutex
	state    State
	email    string
	inFlight bool
}

// NewFlow builds a flow in StateIdle.
func NewFlow(svc Service, creds *CredentialStore) *Flow {
	return &Flow{svc: svc, creds: creds, state: StateIdle}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// RequestCode runs the first step. On success the flow moves to
// AwaitingCode; on any failure it stays on the email step.
func (f *Flow) RequestCode(ctx context.Context, email string) (StepResult, error) {
	// The flow stays on the email step while the request is in flight; only
	// a backend success advances it.
	if err := f.begin(StateIdle, StateIdle); err != nil {
		return StepResult{}, err
	}
	res := f.svc.RequestCode(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if res.Outcome == OutcomeOK {
		f.state = StateAwaitingCode
		f.email = email
	} else {
		f.state = StateIdle
	}
	return res, nil
}

// VerifyCode runs the second step. On success the credential is stored and
// the flow terminates in Authenticated; on rejection the flow returns to
// AwaitingCode.
func (f *Flow) VerifyCode(ctx context.Context, email, otp string) (StepResult, error) {
	if err := f.begin(StateAwaitingCode, StateVerifying); err != nil {
		return StepResult{}, err
	}
	res := f.svc.VerifyCode(ctx, email, otp)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if res.Outcome == OutcomeOK {
		f.state = StateAuthenticated
		f.creds.Set(res.Token)
	} else {
		f.state = StateAwaitingCode
	}
	return res, nil
}

// Logout clears the credential and resets the flow to Idle.
func (f *Flow) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds.Clear()
	f.state = StateIdle
	f.email = ""
}

// begin checks the from-state and the in-flight guard, then marks the flow
// busy in the during-state.
func (f *Flow) begin(from, during State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return domain.ErrBusy
	}
	if f.state != from {
		return domain.ErrInvalidState
	}
	f.inFlight = true
	f.state = during
	return nil
}
