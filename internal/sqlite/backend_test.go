package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cafe/internal/storetest"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

func TestBackendConformance(t *testing.T) {
	storetest.Run(t, types.BackendSQLite, func() types.Store { return NewBackend() })
}

func TestDetachDiscardsRows(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite}))

	catalog, err := b.Catalog()
	require.NoError(t, err)
	require.NoError(t, catalog.Set(types.SectionDrinks, "mocha", 3.5))
	require.NoError(t, b.Detach())

	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite}))
	t.Cleanup(func() { b.Detach() })

	catalog, err = b.Catalog()
	require.NoError(t, err)
	n, err := catalog.Len()
	require.NoError(t, err)
	assert.Zero(t, n, "a fresh attach starts from an empty database")
}

func TestCustomerIDMustBePositive(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite}))
	t.Cleanup(func() { b.Detach() })

	customers, err := b.Customers()
	require.NoError(t, err)

	assert.Error(t, customers.Put(types.Customer{ID: 0, Name: "nobody"}))
}

func TestUpdateSameValueStillSucceeds(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, Seed: true}))
	t.Cleanup(func() { b.Detach() })

	catalog, err := b.Catalog()
	require.NoError(t, err)
	assert.NoError(t, catalog.Update(types.SectionDrinks, "water", 1.5))

	customers, err := b.Customers()
	require.NoError(t, err)
	assert.NoError(t, customers.Update(123, types.FieldAge, "25"))
}
