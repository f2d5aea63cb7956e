package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/panel-gateway/internal/application/theme"
	"github.com/panel-gateway/internal/domain"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.gohtml"))

// PagesHandler renders the login and profile pages. The server-side render
// consumes the resolved theme; everything dynamic on the pages goes through
// the proxy endpoints.
type PagesHandler struct {
	resolver *theme.Resolver
}

func NewPagesHandler(resolver *theme.Resolver) *PagesHandler {
	return &PagesHandler{resolver: resolver}
}

type pageData struct {
	Title string
	Theme map[string]string
}

// Login handles GET /login.
func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.gohtml", "Acceso")
}

// Perfil handles GET /perfil.
func (h *PagesHandler) Perfil(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "perfil.gohtml", "Mi perfil")
}

func (h *PagesHandler) render(w http.ResponseWriter, r *http.Request, name, title string) {
	cfg := h.resolver.Resolve(r.Context())
	def := h.resolver.Defaults()
	// Per-role merge happens here, at render time, never in the resolver.
	merged := make(map[string]string, len(domain.ThemeRoles))
	for _, role := range domain.ThemeRoles {
		merged[role] = cfg.RoleOr(role, def[role])
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, pageData{Title: title, Theme: merged}); err != nil {
		http.Error(w, "error interno", http.StatusInternalServerError)
	}
}
