// Package sqlite implements a storage backend for the cafe console on an
// in-memory SQLite database. Nothing is written to disk; the database is
// dropped on Detach.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/cafe/internal/seed"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

// memoryDSN opens a private in-memory database. Every pooled connection to
// ":memory:" would see its own empty database, so the pool is capped at one
// connection in Attach.
const memoryDSN = ":memory:"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite as the query engine.
type Backend struct {
	mu        sync.RWMutex
	attached  bool
	config    types.Config
	db        *sql.DB
	catalog   *catalogTable
	customers *customersTable
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the database, creates the schema, and seeds the built-in
// rows when config.Seed is set.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	catalog := &catalogTable{db: db}
	customers := &customersTable{db: db}

	if config.Seed {
		if err := seed.Load(catalog, customers); err != nil {
			db.Close()
			return err
		}
	}

	b.db = db
	b.config = config
	b.catalog = catalog
	b.customers = customers
	b.attached = true
	return nil
}

// Detach closes the SQLite connection, discarding all rows. After Detach,
// table access returns ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

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
