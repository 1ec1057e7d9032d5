// Package memory implements the map-backed storage backend for the cafe
// console. It is the default backend and keeps everything in process memory.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/cafe/internal/seed"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store with Go maps.
type Backend struct {
	mu        sync.RWMutex
	attached  bool
	config    types.Config
	catalog   *catalogTable
	customers *customersTable
}

// NewBackend creates a new memory backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach creates empty tables and, when config.Seed is set, loads the
// built-in rows. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	catalog := newCatalogTable()
	customers := newCustomersTable()
	if config.Seed {
		if err := seed.Load(catalog, customers); err != nil {
			return err
		}
	}

	b.catalog = catalog
	b.customers = customers
	b.config = config
	b.attached = true
	return nil
}

// Detach drops both tables. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	b.catalog = nil
	b.customers = nil
	return nil
}

// Catalog returns the menu table.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Catalog() (types.Catalog, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.catalog, nil
}

// Customers returns the customer records table.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) Customers() (types.Customers, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.customers, nil
}
