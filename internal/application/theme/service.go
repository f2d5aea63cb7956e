package theme

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/panel-gateway/internal/config"
	"github.com/panel-gateway/internal/domain"
)

//go:embed assets/default_logo.png
var defaultLogo []byte

// DefaultLogo returns the bundled fallback image bytes, served at the static
// path the pages fall back to.
func DefaultLogo() []byte { return defaultLogo }

// Fetcher is the slice of the backend client the resolver needs.
type Fetcher interface {
	Theming(ctx context.Context) (domain.ThemeConfig, error)
	Logo(ctx context.Context) ([]byte, string, error)
}

// Resolver fetches branding from the backend and degrades to a fixed default
// palette on any failure. It holds no cache; every call re-fetches.
type Resolver struct {
	backend  Fetcher
	defaults config.DefaultTheme
}

// NewResolver builds a resolver with the configured fallback palette.
func NewResolver(backend Fetcher, defaults config.DefaultTheme) *Resolver {
	return &Resolver{backend: backend, defaults: defaults}
}

// Resolve returns the backend's theming as-is when the call succeeds and the
// body parses, and the entire default palette otherwise. It never merges the
// two; missing roles in a successful partial config are the render path's
// problem.
func (r *Resolver) Resolve(ctx context.Context) domain.ThemeConfig {
	cfg, err := r.backend.Theming(ctx)
	if err != nil {
		slog.Warn("theming unavailable, using default palette", "err", err)
		return r.Defaults()
	}
	if cfg == nil {
		cfg = domain.ThemeConfig{}
	}
	return cfg
}

// Logo returns the backend's logo bytes and content type, or the bundled
// default image on any failure. No retries.
func (r *Resolver) Logo(ctx context.Context) ([]byte, string) {
	b, ct, err := r.backend.Logo(ctx)
	if err != nil {
		return defaultLogo, "image/png"
	}
	if ct == "" {
		ct = "image/png"
	}
	return b, ct
}

// Defaults returns a fresh copy of the fallback palette.
func (r *Resolver) Defaults() domain.ThemeConfig {
	return domain.ThemeConfig{
		domain.RolePrimary:   r.defaults.Primary,
		domain.RoleSecondary: r.defaults.Secondary,
		domain.RoleTopbar:    r.defaults.Topbar,
		domain.RoleAccent:    r.defaults.Accent,
	}
}
