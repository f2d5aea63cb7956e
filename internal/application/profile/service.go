package profile

import (
	"context"

	"github.com/panel-gateway/internal/domain"
	"github.com/panel-gateway/internal/infrastructure/backend"
	"github.com/panel-gateway/internal/pkg/id"
)

// Mark is the visual state a field carries after a save.
type Mark string

const (
	// MarkUpdated: the backend applied the change immediately.
	MarkUpdated Mark = "updated"
	// MarkPending: the change awaits administrative approval.
	MarkPending Mark = "pending"
)

// Caller is the slice of the backend client the profile service needs.
type Caller interface {
	GetPerfil(ctx context.Context, bearer string) (*domain.Perfil, error)
	PatchPerfil(ctx context.Context, bearer string, in domain.Perfil) (*backend.PerfilPatched, error)
}

// LoadResult carries the loaded profile or an explicit error. Callers must
// render Err; a failed load is never silent.
type LoadResult struct {
	Perfil   domain.Perfil
	UserName string
	UserNIU  string
	Err      error
}

// SaveResult is the reconciled outcome of a successful save: the
// authoritative server values, one mark per classified field, and one
// notification per classification.
type SaveResult struct {
	Perfil        domain.Perfil
	UserName      string
	UserNIU       string
	Marks         map[string]Mark
	Notifications []domain.Notification
}

// Service loads and saves the authenticated user's profile and reconciles
// the backend's per-field classification into marks and notifications.
type Service interface {
	Load(ctx context.Context, bearer string) LoadResult
	Save(ctx context.Context, bearer string, in domain.Perfil) (*SaveResult, error)
}

type service struct {
	backend Caller
}

// NewService builds the profile reconciliation service.
func NewService(b Caller) Service {
	return &service{backend: b}
}

func (s *service) Load(ctx context.Context, bearer string) LoadResult {
	p, err := s.backend.GetPerfil(ctx, bearer)
	if err != nil {
		return LoadResult{Err: err}
	}
	return LoadResult{Perfil: *p, UserName: p.Nombre, UserNIU: p.NIU}
}

func (s *service) Save(ctx context.Context, bearer string, in domain.Perfil) (*SaveResult, error) {
	patched, err := s.backend.PatchPerfil(ctx, bearer, in)
	if err != nil {
		return nil, err
	}
	return reconcile(patched), nil
}

// reconcile turns the backend's classification lists into marks and ordered
// notifications. Classification is authoritative: no local diffing, and a
// field already applied is never also marked pending (the lists are disjoint
// by contract; applied wins if a backend ever violates that).
func reconcile(patched *backend.PerfilPatched) *SaveResult {
	res := &SaveResult{
		Perfil:   patched.Perfil,
		UserName: patched.Perfil.Nombre,
		UserNIU:  patched.Perfil.NIU,
		Marks:    make(map[string]Mark),
	}
	classes := make(map[string]domain.Classification, len(patched.Aplicados)+len(patched.PendientesAprobacion))
	for _, f := range patched.PendientesAprobacion {
		classes[f] = domain.ClassPending
	}
	for _, f := range patched.Aplicados {
		classes[f] = domain.ClassApplied
	}

	for _, f := range domain.PerfilFields {
		if classes[f] != domain.ClassApplied {
			continue
		}
		res.Marks[f] = MarkUpdated
		res.Notifications = append(res.Notifications, notification(domain.LevelSuccess,
			domain.FieldLabel(f)+": actualizado"))
	}
	for _, f := range domain.PerfilFields {
		if classes[f] != domain.ClassPending {
			continue
		}
		res.Marks[f] = MarkPending
		res.Notifications = append(res.Notifications, notification(domain.LevelWarning,
			domain.FieldLabel(f)+": cambio solicitado (pendiente de aprobación)"))
	}
	return res
}

func notification(level domain.NotificationLevel, msg string) domain.Notification {
	return domain.Notification{
		ID:        id.New(),
		Level:     level,
		Message:   msg,
		DisplayMS: domain.DefaultDisplayMS,
	}
}
