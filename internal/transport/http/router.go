package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/panel-gateway/internal/application/profile"
	"github.com/panel-gateway/internal/application/theme"
	"github.com/panel-gateway/internal/config"
	"github.com/panel-gateway/internal/transport/http/handler"
	appmiddleware "github.com/panel-gateway/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds the router's external collaborators.
type Deps struct {
	Backend BackendGateway
}

// NewRouter builds and returns the gateway router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// The backend rate-limits OTP requests itself; this keeps a hot loop in
	// the page from ever reaching its mail path. ~6/min with a burst of 5.
	otpRL := appmiddleware.NewRateLimiter(rate.Limit(0.1), 5)

	resolver := theme.NewResolver(deps.Backend, cfg.DefaultTheme)
	profileSvc := profile.NewService(deps.Backend)

	healthH := handler.NewHealthHandler()
	themeH := handler.NewThemeHandler(resolver)
	settingsH := handler.NewSettingsHandler(deps.Backend)
	authH := handler.NewAuthHandler(deps.Backend)
	perfilH := handler.NewPerfilHandler(deps.Backend)
	profileH := handler.NewProfileHandler(profileSvc)
	pagesH := handler.NewPagesHandler(resolver)

	// ── Public routes ────────────────────────────────────────────────────
	r.Get("/health", healthH.Ping)
	r.Get("/ajustes/theming", themeH.Theming)
	r.Get("/ajustes/logo", themeH.Logo)
	r.Get("/ajustes/domains", settingsH.Domains)
	r.Get("/static/logo.png", themeH.DefaultLogo)
	r.With(otpRL.Limit).Post("/auth/otp/request", authH.RequestOTP)
	r.With(otpRL.Limit).Post("/auth/otp/verify", authH.VerifyOTP)

	// ── Authenticated proxy routes ───────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Bearer())

		r.Get("/me/perfil", perfilH.Get)
		r.Patch("/me/perfil", perfilH.Patch)
		r.Get("/me/perfil/vista", profileH.View)
		r.Post("/me/perfil/guardar", profileH.Save)
	})

	// ── Pages ────────────────────────────────────────────────────────────
	r.Get("/login", pagesH.Login)
	r.Get("/perfil", pagesH.Perfil)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/login", http.StatusFound)
	})

	return r
}
