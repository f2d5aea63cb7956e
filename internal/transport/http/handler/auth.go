package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/panel-gateway/internal/infrastructure/backend"
	"github.com/panel-gateway/internal/pkg/validate"
)

// Relayer is the verbatim-forwarding slice of the backend client.
type Relayer interface {
	Relay(ctx context.Context, method, path string, body []byte, bearer string) (*backend.Reply, error)
}

// AuthHandler relays the two OTP steps. Each one forwards the backend's
// status and body untouched; only a transport failure is substituted with
// the fixed 502.
type AuthHandler struct {
	backend Relayer
}

func NewAuthHandler(b Relayer) *AuthHandler {
	return &AuthHandler{backend: b}
}

type otpRequestBody struct {
	Email string `json:"email" validate:"required"`
}

type otpVerifyBody struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// RequestOTP handles POST /auth/otp/request.
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req otpRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "cuerpo de petición inválido")
		return
	}
	// Trim only; email syntax is the backend's call.
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		writeDetail(w, http.StatusBadRequest, "email requerido")
		return
	}
	h.relayJSON(w, r, backend.PathOTPRequest, req)
}

// VerifyOTP handles POST /auth/otp/verify.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req otpVerifyBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "cuerpo de petición inválido")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)
	if err := validate.Struct(req); err != nil {
		writeDetail(w, http.StatusBadRequest, "email y otp requeridos")
		return
	}
	h.relayJSON(w, r, backend.PathOTPVerify, req)
}

func (h *AuthHandler) relayJSON(w http.ResponseWriter, r *http.Request, path string, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "error interno")
		return
	}
	rep, err := h.backend.Relay(r.Context(), http.MethodPost, path, b, "")
	if err != nil {
		writeUnreachable(w)
		return
	}
	writeReply(w, rep)
}
