package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/panel-gateway/internal/domain"
	"github.com/panel-gateway/internal/infrastructure/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSvc scripts Load/Save outcomes and can block a save mid-flight.
type stubSvc struct {
	load    LoadResult
	save    *SaveResult
	saveErr error
	block   chan struct{}
	entered chan struct{}
}

func (s *stubSvc) Load(ctx context.Context, bearer string) LoadResult { return s.load }

func (s *stubSvc) Save(ctx context.Context, bearer string, in domain.Perfil) (*SaveResult, error) {
	if s.entered != nil {
		close(s.entered)
		s.entered = nil
	}
	if s.block != nil {
		<-s.block
	}
	return s.save, s.saveErr
}

func TestEditor_LoadPopulates(t *testing.T) {
	svc := &stubSvc{load: LoadResult{
		Perfil:   domain.Perfil{Nombre: "Ana", NIU: "u100"},
		UserName: "Ana",
		UserNIU:  "u100",
	}}
	e := NewEditor(svc)

	res := e.Load(context.Background(), "tok")
	require.NoError(t, res.Err)
	assert.Equal(t, "Ana", e.Perfil().Nombre)
	name, niu := e.Display()
	assert.Equal(t, "Ana", name)
	assert.Equal(t, "u100", niu)
}

func TestEditor_LoadFailureKeepsPreviousValues(t *testing.T) {
	svc := &stubSvc{load: LoadResult{
		Perfil:   domain.Perfil{Nombre: "Ana"},
		UserName: "Ana",
	}}
	e := NewEditor(svc)
	_ = e.Load(context.Background(), "tok")

	svc.load = LoadResult{Err: &backend.TransportError{Err: errors.New("refused")}}
	res := e.Load(context.Background(), "tok")
	assert.Error(t, res.Err)
	// Whatever was rendered before stays put.
	assert.Equal(t, "Ana", e.Perfil().Nombre)
}

func TestEditor_EditSaveRoundTrip(t *testing.T) {
	svc := &stubSvc{save: &SaveResult{
		Perfil:   domain.Perfil{Nombre: "Ana", Grupo: "B1"},
		UserName: "Ana",
		Marks:    map[string]Mark{"nombre": MarkUpdated},
	}}
	e := NewEditor(svc)
	require.Equal(t, StateViewing, e.State())

	require.NoError(t, e.BeginEdit())
	assert.Equal(t, StateEditing, e.State())

	res, err := e.Save(context.Background(), "tok", domain.Perfil{Nombre: "Ana", Grupo: "B9"})
	require.NoError(t, err)
	assert.Equal(t, StateViewing, e.State())
	// Server values overwrite the local edit.
	assert.Equal(t, "B1", e.Perfil().Grupo)
	assert.Equal(t, map[string]Mark{"nombre": MarkUpdated}, e.Marks())
	assert.Equal(t, res.Marks, e.Marks())
}

func TestEditor_BeginEditOnlyFromViewing(t *testing.T) {
	e := NewEditor(&stubSvc{})
	require.NoError(t, e.BeginEdit())
	assert.ErrorIs(t, e.BeginEdit(), domain.ErrInvalidState)
}

func TestEditor_SaveRequiresEditing(t *testing.T) {
	e := NewEditor(&stubSvc{})
	_, err := e.Save(context.Background(), "tok", domain.Perfil{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestEditor_SaveFailureMutatesNothing(t *testing.T) {
	svc := &stubSvc{
		load:    LoadResult{Perfil: domain.Perfil{Nombre: "Ana"}, UserName: "Ana"},
		saveErr: &backend.RejectionError{Status: 500},
	}
	e := NewEditor(svc)
	_ = e.Load(context.Background(), "tok")
	require.NoError(t, e.BeginEdit())

	_, err := e.Save(context.Background(), "tok", domain.Perfil{Nombre: "Eva"})
	require.Error(t, err)
	assert.Equal(t, StateEditing, e.State()) // retry stays possible
	assert.Equal(t, "Ana", e.Perfil().Nombre)
	assert.Empty(t, e.Marks())
}

func TestEditor_DoubleSaveIsBusy(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{})
	svc := &stubSvc{
		save:    &SaveResult{Marks: map[string]Mark{}},
		block:   block,
		entered: entered,
	}
	e := NewEditor(svc)
	require.NoError(t, e.BeginEdit())

	done := make(chan error, 1)
	go func() {
		_, err := e.Save(context.Background(), "tok", domain.Perfil{})
		done <- err
	}()
	<-entered

	_, err := e.Save(context.Background(), "tok", domain.Perfil{})
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(block)
	require.NoError(t, <-done)
	assert.Equal(t, StateViewing, e.State())
}
