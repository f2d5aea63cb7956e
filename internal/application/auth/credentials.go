package auth

import "sync"

// CredentialStore holds the opaque access token between login and logout.
// Write-once-per-login, read-many: Set happens only on verification success,
// Clear only on logout.
type CredentialStore struct {
	mu    sync.RWMutex
	token string
}

// NewCredentialStore returns an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Set stores the credential obtained from a successful verification.
func (c *CredentialStore) Set(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Get returns the current credential, or "" when logged out.
func (c *CredentialStore) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Clear drops the credential on logout.
func (c *CredentialStore) Clear() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
