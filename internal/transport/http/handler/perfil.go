package handler

import (
	"io"
	"net/http"

	"github.com/panel-gateway/internal/infrastructure/backend"
	"github.com/panel-gateway/internal/transport/http/middleware"
)

// PerfilHandler relays the authenticated profile resource. The bearer comes
// from the request's Authorization header (injected by the Bearer
// middleware) and is forwarded as-is; the gateway retains nothing.
type PerfilHandler struct {
	backend Relayer
}

func NewPerfilHandler(b Relayer) *PerfilHandler {
	return &PerfilHandler{backend: b}
}

// Get handles GET /me/perfil.
func (h *PerfilHandler) Get(w http.ResponseWriter, r *http.Request) {
	bearer, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "No autenticado")
		return
	}
	rep, err := h.backend.Relay(r.Context(), http.MethodGet, backend.PathPerfil, nil, bearer)
	if err != nil {
		writeUnreachable(w)
		return
	}
	writeReply(w, rep)
}

// Patch handles PATCH /me/perfil. The body goes through untouched: the page
// submits all four fields and the backend decides what is applied, pending
// or blocked.
func (h *PerfilHandler) Patch(w http.ResponseWriter, r *http.Request) {
	bearer, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "No autenticado")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "cuerpo de petición inválido")
		return
	}
	rep, err := h.backend.Relay(r.Context(), http.MethodPatch, backend.PathPerfil, body, bearer)
	if err != nil {
		writeUnreachable(w)
		return
	}
	writeReply(w, rep)
}
