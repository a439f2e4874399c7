package memory

import (
	"context"
	"sync"

	"github.com/martijn/trainhub/internal/core/repository"
)

// Credentials is an in-process credential store.
type Credentials struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.CredentialRepository = (*Credentials)(nil)

func NewCredentials() *Credentials {
	return &Credentials{values: make(map[string]string)}
}

func (c *Credentials) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *Credentials) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *Credentials) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}
