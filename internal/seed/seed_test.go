package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cafe/internal/memory"
	"github.com/mesh-intelligence/cafe/internal/seed"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

func TestLoad(t *testing.T) {
	b := memory.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendMemory}))
	t.Cleanup(func() { b.Detach() })

	catalog, err := b.Catalog()
	require.NoError(t, err)
	customers, err := b.Customers()
	require.NoError(t, err)

	require.NoError(t, seed.Load(catalog, customers))

	n, err := catalog.Len()
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	item, err := catalog.Get(types.SectionDrinks, "Boba Milk Tea")
	require.NoError(t, err)
	assert.Equal(t, "boba milk tea", item.Name, "seeded names are stored lowercase")
	assert.Equal(t, 2.0, item.Price)

	c, err := customers.Get(789)
	require.NoError(t, err)
	assert.Equal(t, "Lauriane Houndjahoue", c.Name)

	n, err = customers.Len()
	require.NoError(t, err)
	assert.Equal(t, len(seed.Customers), n)
}

func TestItemCount(t *testing.T) {
	assert.Equal(t, 6, seed.ItemCount(types.SectionDrinks))
	assert.Equal(t, 8, seed.ItemCount(types.SectionDesserts))
	assert.Equal(t, 6, seed.ItemCount(types.SectionMeals))
	assert.Equal(t, 5, seed.ItemCount(types.SectionSides))
	assert.Equal(t, 0, seed.ItemCount(types.Section("brunch")))
}
