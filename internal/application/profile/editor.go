package profile

import (
	"context"
	"sync"

	"github.com/panel-gateway/internal/domain"
)

// ViewState of the profile editor.
type ViewState string

const (
	// StateViewing: fields disabled, showing the last confirmed values.
	StateViewing ViewState = "viewing"
	// StateEditing: fields enabled, action control shows "save".
	StateEditing ViewState = "editing"
	// StateSaving: a patch is in flight.
	StateSaving ViewState = "saving"
)

// Editor drives the Viewing → Editing → Saving → Viewing machine on top of
// the service. It only ever exposes the server's last-confirmed values;
// local edits survive nowhere once a save lands, except as pending marks.
type Editor struct {
	svc Service

	mu       sync.Mutex
	state    ViewState
	perfil   domain.Perfil
	userName string
	userNIU  string
	marks    map[string]Mark
	inFlight bool
}

// NewEditor builds an editor in StateViewing with an empty profile.
func NewEditor(svc Service) *Editor {
	return &Editor{svc: svc, state: StateViewing, marks: map[string]Mark{}}
}

// State returns the current view state.
func (e *Editor) State() ViewState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Perfil returns the last confirmed server values.
func (e *Editor) Perfil() domain.Perfil {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.perfil
}

// Display returns the persistent display pair (name, NIU).
func (e *Editor) Display() (string, string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.userName, e.userNIU
}

// Marks returns a copy of the per-field marks from the last save.
func (e *Editor) Marks() map[string]Mark {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]Mark, len(e.marks))
	for k, v := range e.marks {
		out[k] = v
	}
	return out
}

// Load fetches the profile and, on success, populates the fields and the
// display pair. On failure the previously rendered values stay put and the
// result's Err tells the caller what to surface.
func (e *Editor) Load(ctx context.Context, bearer string) LoadResult {
	res := e.svc.Load(ctx, bearer)
	if res.Err != nil {
		return res
	}
	e.mu.Lock()
	e.perfil = res.Perfil
	e.userName = res.UserName
	e.userNIU = res.UserNIU
	e.mu.Unlock()
	return res
}

// BeginEdit enables the fields. Only valid from Viewing.
func (e *Editor) BeginEdit() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateViewing {
		return domain.ErrInvalidState
	}
	e.state = StateEditing
	e.marks = map[string]Mark{}
	return nil
}

// Save submits all four field values as a single patch. On success the
// editor re-disables the fields, repopulates everything from the server's
// authoritative values (overwriting local edits, pending ones included) and
// records the marks. On failure nothing is mutated and the editor returns to
// Editing so the user can retry.
func (e *Editor) Save(ctx context.Context, bearer string, in domain.Perfil) (*SaveResult, error) {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return nil, domain.ErrBusy
	}
	if e.state != StateEditing {
		e.mu.Unlock()
		return nil, domain.ErrInvalidState
	}
	e.inFlight = true
	e.state = StateSaving
	e.mu.Unlock()

	res, err := e.svc.Save(ctx, bearer, in)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false
	if err != nil {
		e.state = StateEditing
		return nil, err
	}
	e.state = StateViewing
	e.perfil = res.Perfil
	e.userName = res.UserName
	e.userNIU = res.UserNIU
	e.marks = res.Marks
	return res, nil
}
