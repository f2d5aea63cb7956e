package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/panel-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService lets a test script step outcomes and optionally block a step
// until released, to exercise the in-flight guard.
type stubService struct {
	mu      sync.Mutex
	request StepResult
	verify  StepResult
	block   chan struct{} // when set, steps wait on it before returning
	entered chan struct{} // when set, closed once a step is reached
}

func (s *stubService) RequestCode(ctx context.Context, email string) StepResult {
	if s.entered != nil {
		close(s.entered)
		s.entered = nil
	}
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

func (s *stubService) VerifyCode(ctx context.Context, email, otp string) StepResult {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verify
}

func TestFlow_HappyPath(t *testing.T) {
	svc := &stubService{
		request: StepResult{Outcome: OutcomeOK, Message: "sent"},
		verify:  StepResult{Outcome: OutcomeOK, Message: "Verificado.", Token: "tok"},
	}
	creds := NewCredentialStore()
	f := NewFlow(svc, creds)
	require.Equal(t, StateIdle, f.State())

	res, err := f.RequestCode(context.Background(), "user@x.com")
	require.NoError(t, err)
	assert.Equal(t, "sent", res.Message)
	assert.Equal(t, StateAwaitingCode, f.State())

	res, err = f.VerifyCode(context.Background(), "user@x.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, StateAuthenticated, f.State())
	assert.Equal(t, "tok", creds.Get())
}

func TestFlow_RequestRejectionStaysOnEmailStep(t *testing.T) {
	svc := &stubService{request: StepResult{Outcome: OutcomeRejected, Message: "invalid email"}}
	f := NewFlow(svc, NewCredentialStore())

	_, err := f.RequestCode(context.Background(), "user@x.com")
	require.NoError(t, err)
	assert.Equal(t, StateIdle, f.State())
}

func TestFlow_VerifyRejectionReturnsToAwaitingCode(t *testing.T) {
	svc := &stubService{
		request: StepResult{Outcome: OutcomeOK, Message: "sent"},
		verify:  StepResult{Outcome: OutcomeRejected, Message: "Código incorrecto."},
	}
	creds := NewCredentialStore()
	f := NewFlow(svc, creds)

	_, err := f.RequestCode(context.Background(), "user@x.com")
	require.NoError(t, err)
	_, err = f.VerifyCode(context.Background(), "user@x.com", "000000")
	require.NoError(t, err)
	// Recoverable: the user may retry the code.
	assert.Equal(t, StateAwaitingCode, f.State())
	assert.Empty(t, creds.Get())
}

func TestFlow_VerifyFromIdleIsInvalid(t *testing.T) {
	f := NewFlow(&stubService{}, NewCredentialStore())

	_, err := f.VerifyCode(context.Background(), "user@x.com", "123456")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestFlow_SecondTriggerWhileInFlightIsBusy(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{})
	svc := &stubService{
		request: StepResult{Outcome: OutcomeOK, Message: "sent"},
		block:   block,
		entered: entered,
	}
	f := NewFlow(svc, NewCredentialStore())

	done := make(chan error, 1)
	go func() {
		_, err := f.RequestCode(context.Background(), "user@x.com")
		done <- err
	}()
	<-entered

	// Second click while the first request is still in flight.
	_, err := f.RequestCode(context.Background(), "user@x.com")
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, StateAwaitingCode, f.State())
}

func TestFlow_LogoutClearsCredentialAndResets(t *testing.T) {
	svc := &stubService{
		request: StepResult{Outcome: OutcomeOK},
		verify:  StepResult{Outcome: OutcomeOK, Token: "tok"},
	}
	creds := NewCredentialStore()
	f := NewFlow(svc, creds)

	_, _ = f.RequestCode(context.Background(), "user@x.com")
	_, _ = f.VerifyCode(context.Background(), "user@x.com", "123456")
	require.Equal(t, "tok", creds.Get())

	f.Logout()
	assert.Equal(t, StateIdle, f.State())
	assert.Empty(t, creds.Get())
}
