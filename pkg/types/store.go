package types

import "errors"

// Store defines the backend-agnostic access point for the two cafe tables.
// Callers attach to a backend, use the tables, and detach when done.
type Store interface {
	// Attach initializes the backend described by config and, when
	// config.Seed is set, loads the built-in menu and customers.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, table access returns ErrStoreDetached.
	Detach() error

	// Catalog returns the menu table.
	Catalog() (Catalog, error)

	// Customers returns the customer records table.
	Customers() (Customers, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
