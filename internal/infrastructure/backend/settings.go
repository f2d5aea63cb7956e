package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/panel-gateway/internal/domain"
)

// Backend settings endpoints.
const (
	PathTheming = "/ajustes/theming"
	PathLogo    = "/ajustes/logo"
	PathDomains = "/ajustes/domains"
)

// Theming fetches the branding palette. The result may be partial; it is
// returned exactly as the backend sent it.
func (c *Client) Theming(ctx context.Context) (domain.ThemeConfig, error) {
	rep, err := c.Relay(ctx, http.MethodGet, PathTheming, nil, "")
	if err != nil {
		return nil, err
	}
	if !rep.Success() {
		return nil, &RejectionError{Status: rep.Status, Detail: DetailFrom(rep.Body)}
	}
	var cfg domain.ThemeConfig
	if err := json.Unmarshal(rep.Body, &cfg); err != nil {
		return nil, &MalformedError{Err: err}
	}
	return cfg, nil
}

// Logo fetches the branding image bytes and their content type.
func (c *Client) Logo(ctx context.Context) ([]byte, string, error) {
	rep, err := c.Relay(ctx, http.MethodGet, PathLogo, nil, "")
	if err != nil {
		return nil, "", err
	}
	if !rep.Success() {
		return nil, "", &RejectionError{Status: rep.Status, Detail: DetailFrom(rep.Body)}
	}
	return rep.Body, rep.ContentType, nil
}

// AllowedDomains fetches the email domains the backend accepts at login.
// An empty list means any domain.
func (c *Client) AllowedDomains(ctx context.Context) ([]string, error) {
	var out struct {
		AllowedDomains []string `json:"allowed_domains"`
	}
	if err := c.getJSON(ctx, PathDomains, "", &out); err != nil {
		return nil, err
	}
	return out.AllowedDomains, nil
}
