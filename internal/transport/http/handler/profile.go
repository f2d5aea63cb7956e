package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/panel-gateway/internal/application/profile"
	"github.com/panel-gateway/internal/domain"
	"github.com/panel-gateway/internal/infrastructure/backend"
	"github.com/panel-gateway/internal/transport/http/middleware"
)

// ProfileHandler serves the reconciled profile views the pages consume:
// load with an explicit error, and save with per-field marks and
// notifications already classified. The raw /me/perfil proxy stays verbatim;
// this is the client-side half of the contract, hosted on the gateway.
type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// PerfilViewEnvelope wraps the loaded profile plus the display pair.
type PerfilViewEnvelope struct {
	Perfil   domain.Perfil `json:"perfil"`
	UserName string        `json:"user_name"`
	UserNIU  string        `json:"user_niu"`
}

// PerfilSaveEnvelope wraps a reconciled save.
type PerfilSaveEnvelope struct {
	Perfil        domain.Perfil           `json:"perfil"`
	UserName      string                  `json:"user_name"`
	UserNIU       string                  `json:"user_niu"`
	Marks         map[string]profile.Mark `json:"marks"`
	Notifications []domain.Notification   `json:"notifications"`
}

// View handles GET /me/perfil/vista.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	bearer, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "No autenticado")
		return
	}
	res := h.svc.Load(r.Context(), bearer)
	if res.Err != nil {
		writeBackendError(w, res.Err)
		return
	}
	writeJSON(w, http.StatusOK, PerfilViewEnvelope{
		Perfil:   res.Perfil,
		UserName: res.UserName,
		UserNIU:  res.UserNIU,
	})
}

// Save handles POST /me/perfil/guardar. On failure no marks and no
// notifications come back, only the error detail.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	bearer, ok := middleware.BearerFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "No autenticado")
		return
	}
	var in domain.Perfil
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeDetail(w, http.StatusBadRequest, "cuerpo de petición inválido")
		return
	}
	res, err := h.svc.Save(r.Context(), bearer, in)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PerfilSaveEnvelope{
		Perfil:        res.Perfil,
		UserName:      res.UserName,
		UserNIU:       res.UserNIU,
		Marks:         res.Marks,
		Notifications: res.Notifications,
	})
}

// writeBackendError maps the backend failure taxonomy onto a response: a
// rejection keeps its status and detail, everything without a usable
// response becomes the fixed 502.
func writeBackendError(w http.ResponseWriter, err error) {
	var rej *backend.RejectionError
	if errors.As(err, &rej) {
		detail := rej.Detail
		if detail == "" {
			detail = "No se pudo completar la operación."
		}
		writeDetail(w, rej.Status, detail)
		return
	}
	writeUnreachable(w)
}
