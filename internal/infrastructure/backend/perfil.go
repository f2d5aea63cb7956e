package backend

import (
	"context"
	"net/http"

	"github.com/panel-gateway/internal/domain"
)

// PathPerfil is the authenticated profile resource.
const PathPerfil = "/me/perfil"

type perfilEnvelope struct {
	OK     bool          `json:"ok"`
	Perfil domain.Perfil `json:"perfil"`
}

// PerfilPatched is the backend's reconciliation answer: the authoritative
// profile after the save, plus the per-field classification lists. A field
// appears in at most one list; a field in none of them is unchanged.
type PerfilPatched struct {
	OK                   bool          `json:"ok"`
	Aplicados            []string      `json:"aplicados"`
	PendientesAprobacion []string      `json:"pendientes_aprobacion"`
	Bloqueados           []string      `json:"bloqueados"`
	Perfil               domain.Perfil `json:"perfil"`
}

// GetPerfil fetches the authenticated user's profile.
func (c *Client) GetPerfil(ctx context.Context, bearer string) (*domain.Perfil, error) {
	var out perfilEnvelope
	if err := c.getJSON(ctx, PathPerfil, bearer, &out); err != nil {
		return nil, err
	}
	return &out.Perfil, nil
}

// PatchPerfil submits all four field values as a single patch, whether or not
// they changed, and returns the backend's reconciliation.
func (c *Client) PatchPerfil(ctx context.Context, bearer string, in domain.Perfil) (*PerfilPatched, error) {
	var out PerfilPatched
	if err := c.sendJSON(ctx, http.MethodPatch, PathPerfil, in, bearer, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
