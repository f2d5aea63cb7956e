package http

import (
	"context"

	"github.com/panel-gateway/internal/domain"
	"github.com/panel-gateway/internal/infrastructure/backend"
)

// BackendGateway is the minimal surface the router requires from the backend
// client: the verbatim relay for proxy paths plus the typed reads the theme
// resolver and profile service consume. *backend.Client satisfies it.
type BackendGateway interface {
	Relay(ctx context.Context, method, path string, body []byte, bearer string) (*backend.Reply, error)
	Theming(ctx context.Context) (domain.ThemeConfig, error)
	Logo(ctx context.Context) ([]byte, string, error)
	GetPerfil(ctx context.Context, bearer string) (*domain.Perfil, error)
	PatchPerfil(ctx context.Context, bearer string, in domain.Perfil) (*backend.PerfilPatched, error)
}
