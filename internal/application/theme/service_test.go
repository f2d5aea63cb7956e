package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/panel-gateway/internal/config"
	"github.com/panel-gateway/internal/domain"
	"github.com/panel-gateway/internal/infrastructure/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- mocks ---

type mockFetcher struct{ mock.Mock }

func (m *mockFetcher) Theming(ctx context.Context) (domain.ThemeConfig, error) {
	args := m.Called(ctx)
	if c, _ := args.Get(0).(domain.ThemeConfig); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFetcher) Logo(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	if b, _ := args.Get(0).([]byte); b != nil {
		return b, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

var testDefaults = config.DefaultTheme{
	Primary:   "#0ea5e9",
	Secondary: "#64748b",
	Topbar:    "#0f172a",
	Accent:    "#22c55e",
}

func wholeDefaultPalette() domain.ThemeConfig {
	return domain.ThemeConfig{
		"primary":   "#0ea5e9",
		"secondary": "#64748b",
		"topbar":    "#0f172a",
		"accent":    "#22c55e",
	}
}

// --- tests ---

func TestResolve_PartialConfigReturnedUnmodified(t *testing.T) {
	f := new(mockFetcher)
	f.On("Theming", mock.Anything).Return(domain.ThemeConfig{"accent": "#ff0000"}, nil)

	got := NewResolver(f, testDefaults).Resolve(context.Background())
	assert.Equal(t, domain.ThemeConfig{"accent": "#ff0000"}, got)
}

func TestResolve_TransportFailureFallsBackWholesale(t *testing.T) {
	f := new(mockFetcher)
	f.On("Theming", mock.Anything).Return(nil, &backend.TransportError{Err: errors.New("refused")})

	got := NewResolver(f, testDefaults).Resolve(context.Background())
	assert.Equal(t, wholeDefaultPalette(), got)
}

func TestResolve_RejectionFallsBackWholesale(t *testing.T) {
	f := new(mockFetcher)
	f.On("Theming", mock.Anything).Return(nil, &backend.RejectionError{Status: 500})

	got := NewResolver(f, testDefaults).Resolve(context.Background())
	assert.Equal(t, wholeDefaultPalette(), got)
}

func TestResolve_MalformedBodyFallsBackWholesale(t *testing.T) {
	f := new(mockFetcher)
	f.On("Theming", mock.Anything).Return(nil, &backend.MalformedError{Err: errors.New("bad json")})

	got := NewResolver(f, testDefaults).Resolve(context.Background())
	// Never a partial merge: the whole palette or the whole backend config.
	assert.Equal(t, wholeDefaultPalette(), got)
}

func TestResolve_Idempotent(t *testing.T) {
	f := new(mockFetcher)
	f.On("Theming", mock.Anything).Return(domain.ThemeConfig{"primary": "#111111"}, nil).Twice()

	r := NewResolver(f, testDefaults)
	first := r.Resolve(context.Background())
	second := r.Resolve(context.Background())
	assert.Equal(t, first, second)
	f.AssertNumberOfCalls(t, "Theming", 2) // no hidden caching
}

func TestLogo_SuccessBindsBackendBytes(t *testing.T) {
	f := new(mockFetcher)
	f.On("Logo", mock.Anything).Return([]byte("png-bytes"), "image/png", nil)

	b, ct := NewResolver(f, testDefaults).Logo(context.Background())
	assert.Equal(t, []byte("png-bytes"), b)
	assert.Equal(t, "image/png", ct)
}

func TestLogo_FailureBindsBundledDefault(t *testing.T) {
	f := new(mockFetcher)
	f.On("Logo", mock.Anything).Return(nil, "", &backend.RejectionError{Status: 404, Detail: "No hay logo"})

	b, ct := NewResolver(f, testDefaults).Logo(context.Background())
	assert.Equal(t, DefaultLogo(), b)
	assert.Equal(t, "image/png", ct)
	assert.NotEmpty(t, b)
}
