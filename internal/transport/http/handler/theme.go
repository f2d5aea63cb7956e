package handler

import (
	"net/http"

	"github.com/panel-gateway/internal/application/theme"
)

// ThemeHandler serves the resolved branding. Unlike the proxy endpoints it
// always answers 200: the resolver's whole contract is that a broken backend
// degrades to the default palette and the bundled logo.
type ThemeHandler struct {
	resolver *theme.Resolver
}

func NewThemeHandler(resolver *theme.Resolver) *ThemeHandler {
	return &ThemeHandler{resolver: resolver}
}

// Theming handles GET /ajustes/theming.
func (h *ThemeHandler) Theming(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Resolve(r.Context()))
}

// Logo handles GET /ajustes/logo.
func (h *ThemeHandler) Logo(w http.ResponseWriter, r *http.Request) {
	b, ct := h.resolver.Logo(r.Context())
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// DefaultLogo handles GET /static/logo.png, the bundled image the pages bind
// when the live logo cannot be displayed.
func (h *ThemeHandler) DefaultLogo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(theme.DefaultLogo())
}
