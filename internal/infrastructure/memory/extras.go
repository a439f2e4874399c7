package memory

import (
	"context"
	"sync"

	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/repository"
)

// Extras is an in-process extras side-store.
type Extras struct {
	mu         sync.RWMutex
	clients    map[int64]domain.ClientExtras
	formateurs map[int64]domain.FormateurExtras
}

var _ repository.ExtrasRepository = (*Extras)(nil)

func NewExtras() *Extras {
	return &Extras{
		clients:    make(map[int64]domain.ClientExtras),
		formateurs: make(map[int64]domain.FormateurExtras),
	}
}

func (e *Extras) ClientExtras(id int64) domain.ClientExtras {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clients[id]
}

func (e *Extras) FormateurExtras(id int64) domain.FormateurExtras {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.formateurs[id]
}

func (e *Extras) SetClientExtras(_ context.Context, id int64, extras domain.ClientExtras) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clients[id] = extras
	return nil
}

func (e *Extras) SetFormateurExtras(_ context.Context, id int64, extras domain.FormateurExtras) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.formateurs[id] = extras
	return nil
}

func (e *Extras) DeleteClientExtras(_ context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.clients, id)
	return nil
}

func (e *Extras) DeleteFormateurExtras(_ context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.formateurs, id)
	return nil
}
