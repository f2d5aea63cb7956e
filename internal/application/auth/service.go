package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/panel-gateway/internal/infrastructure/backend"
)

// Fixed user-facing messages. The network message is a local classification
// and must never be replaced by (or mistaken for) a backend error detail.
const (
	MsgNetworkError   = "No se pudo contactar con el servidor. Inténtalo de nuevo."
	MsgGenericFailure = "No se pudo completar la operación."
	MsgEmailRequired  = "Introduce tu email."
	MsgCodeRequired   = "Introduce el código."
)

// Outcome classifies one OTP step.
type Outcome string

const (
	// OutcomeOK: the backend accepted the step.
	OutcomeOK Outcome = "ok"
	// OutcomeRejected: the backend answered with a non-success status.
	OutcomeRejected Outcome = "rejected"
	// OutcomeNetwork: no backend response at all.
	OutcomeNetwork Outcome = "network"
	// OutcomeInvalid: local input check failed, nothing was sent.
	OutcomeInvalid Outcome = "invalid"
)

// StepResult is the outcome of one OTP step. Token is set only after a
// successful verification.
type StepResult struct {
	Outcome Outcome
	Message string
	Token   string
}

// Caller is the slice of the backend client the OTP flow needs.
type Caller interface {
	RequestOTP(ctx context.Context, email string) (*backend.OTPRequested, error)
	VerifyOTP(ctx context.Context, email, otp string) (*backend.OTPVerified, error)
}

// Service relays the two OTP steps to the backend and translates every
// failure into a user-visible message. It is stateless; flow state lives in
// Flow.
type Service interface {
	RequestCode(ctx context.Context, email string) StepResult
	VerifyCode(ctx context.Context, email, otp string) StepResult
}

type service struct {
	backend Caller
}

// NewService builds the OTP relay service.
func NewService(b Caller) Service {
	return &service{backend: b}
}

func (s *service) RequestCode(ctx context.Context, email string) StepResult {
	email = strings.TrimSpace(email)
	if email == "" {
		return StepResult{Outcome: OutcomeInvalid, Message: MsgEmailRequired}
	}
	out, err := s.backend.RequestOTP(ctx, email)
	if err != nil {
		return classify(err)
	}
	return StepResult{Outcome: OutcomeOK, Message: out.Message}
}

func (s *service) VerifyCode(ctx context.Context, email, otp string) StepResult {
	email = strings.TrimSpace(email)
	otp = strings.TrimSpace(otp)
	if email == "" {
		return StepResult{Outcome: OutcomeInvalid, Message: MsgEmailRequired}
	}
	if otp == "" {
		return StepResult{Outcome: OutcomeInvalid, Message: MsgCodeRequired}
	}
	out, err := s.backend.VerifyOTP(ctx, email, otp)
	if err != nil {
		return classify(err)
	}
	return StepResult{Outcome: OutcomeOK, Message: out.Message, Token: out.AccessToken}
}

// classify maps the backend error taxonomy onto a StepResult. A rejection
// surfaces the backend's detail verbatim when present; everything without a
// response is the fixed network message.
func classify(err error) StepResult {
	var rej *backend.RejectionError
	if errors.As(err, &rej) {
		msg := rej.Detail
		if msg == "" {
			msg = MsgGenericFailure
		}
		return StepResult{Outcome: OutcomeRejected, Message: msg}
	}
	var mal *backend.MalformedError
	if errors.As(err, &mal) {
		return StepResult{Outcome: OutcomeRejected, Message: MsgGenericFailure}
	}
	return StepResult{Outcome: OutcomeNetwork, Message: MsgNetworkError}
}
