package middleware

import (
	"encoding/json"
	"net/http"
)

// writeDetail writes the backend-compatible error shape {"detail": ...} with
// the correct Content-Type. The gateway substitutes responses only in this
// shape so the page script handles a single format.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
