package handler

import (
	"encoding/json"
	"net/http"

	"github.com/panel-gateway/internal/infrastructure/backend"
)

// DetailUnreachable is the one payload the gateway substitutes when the
// backend could not be reached at all. Everything else is forwarded verbatim.
const DetailUnreachable = "No se pudo contactar con el servidor"

// DetailEnvelope is the backend-compatible error shape.
type DetailEnvelope struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, DetailEnvelope{Detail: detail})
}

// writeReply forwards a backend reply untouched: same status, same body,
// same content type. The proxy never invents a status.
func writeReply(w http.ResponseWriter, rep *backend.Reply) {
	ct := rep.ContentType
	if ct == "" {
		ct = "application/json"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(rep.Status)
	_, _ = w.Write(rep.Body)
}

// writeUnreachable is the fixed transport-failure substitution: 502 with the
// fixed detail, never confused with a backend-reported error.
func writeUnreachable(w http.ResponseWriter) {
	writeDetail(w, http.StatusBadGateway, DetailUnreachable)
}
