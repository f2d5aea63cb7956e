package handler

import (
	"net/http"

	"github.com/panel-gateway/internal/infrastructure/backend"
)

// SettingsHandler relays the public settings reads the login page can show.
type SettingsHandler struct {
	backend Relayer
}

func NewSettingsHandler(b Relayer) *SettingsHandler {
	return &SettingsHandler{backend: b}
}

// Domains handles GET /ajustes/domains: the allowed email domains list,
// forwarded verbatim.
func (h *SettingsHandler) Domains(w http.ResponseWriter, r *http.Request) {
	rep, err := h.backend.Relay(r.Context(), http.MethodGet, backend.PathDomains, nil, "")
	if err != nil {
		writeUnreachable(w)
		return
	}
	writeReply(w, rep)
}
