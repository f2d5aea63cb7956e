package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/panel-gateway/internal/config"
)

// Client talks to the identity/profile backend. The base URL is fixed at
// construction; there is no other mutable state, so a single Client is safe
// for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a backend client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.BackendBaseURL,
		http:    &http.Client{Timeout: cfg.BackendTimeout},
	}
}

// Reply is a raw backend response: exactly the status, body and content type
// the backend produced, for verbatim relaying.
type Reply struct {
	Status      int
	Body        []byte
	ContentType string
}

// Success reports whether the reply carries a 2xx status.
func (r *Reply) Success() bool { return r.Status >= 200 && r.Status < 300 }

// Relay performs one backend call and returns whatever came back. The only
// possible error is a *TransportError; a non-success status is still a Reply,
// because proxy paths must forward it untouched.
func (c *Client) Relay(ctx context.Context, method, path string, body []byte, bearer string) (*Reply, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		// The response died mid-read; same class as never answering.
		return nil, &TransportError{Err: err}
	}
	return &Reply{
		Status:      resp.StatusCode,
		Body:        b,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path, bearer string, out interface{}) error {
	rep, err := c.Relay(ctx, http.MethodGet, path, nil, bearer)
	if err != nil {
		return err
	}
	return decodeReply(rep, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in interface{}, bearer string, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &MalformedError{Err: err}
	}
	rep, err := c.Relay(ctx, method, path, body, bearer)
	if err != nil {
		return err
	}
	return decodeReply(rep, out)
}

// decodeReply classifies a reply: non-success becomes a *RejectionError with
// the backend's detail when present, success with an unparseable body becomes
// a *MalformedError.
func decodeReply(rep *Reply, out interface{}) error {
	if !rep.Success() {
		return &RejectionError{Status: rep.Status, Detail: DetailFrom(rep.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rep.Body, out); err != nil {
		return &MalformedError{Err: err}
	}
	return nil
}

// DetailFrom extracts the backend's {"detail": ...} string from an error body,
// or "" when there is none.
func DetailFrom(body []byte) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Detail
}
