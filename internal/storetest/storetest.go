// Package storetest provides a conformance suite that every types.Store
// backend must pass.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cafe/internal/seed"
	"github.com/mesh-intelligence/cafe/pkg/types"
)

// Factory returns a fresh, unattached backend.
type Factory func() types.Store

// attach creates a backend from f, attaches it with the given seed setting,
// and detaches it when the test ends.
func attach(t *testing.T, f Factory, backend string, seeded bool) types.Store {
	t.Helper()

	s := f()
	require.NoError(t, s.Attach(types.Config{Backend: backend, Seed: seeded}))
	t.Cleanup(func() { s.Detach() })
	return s
}

func tables(t *testing.T, s types.Store) (types.Catalog, types.Customers) {
	t.Helper()

	catalog, err := s.Catalog()
	require.NoError(t, err)
	customers, err := s.Customers()
	require.NoError(t, err)
	return catalog, customers
}

// Run executes the conformance suite against backends built by f. backend is
// the Config.Backend name the factory serves.
func Run(t *testing.T, backend string, f Factory) {
	t.Run("lifecycle", func(t *testing.T) { testLifecycle(t, backend, f) })
	t.Run("catalog", func(t *testing.T) { testCatalog(t, backend, f) })
	t.Run("catalog ordering", func(t *testing.T) { testCatalogOrdering(t, backend, f) })
	t.Run("customers", func(t *testing.T) { testCustomers(t, backend, f) })
	t.Run("seed", func(t *testing.T) { testSeed(t, backend, f) })
}

func testLifecycle(t *testing.T, backend string, f Factory) {
	s := f()

	_, err := s.Catalog()
	assert.ErrorIs(t, err, types.ErrStoreDetached, "tables unavailable before Attach")

	assert.Error(t, s.Attach(types.Config{Backend: "bogus"}), "invalid config rejected")

	require.NoError(t, s.Attach(types.Config{Backend: backend}))
	assert.ErrorIs(t, s.Attach(types.Config{Backend: backend}), types.ErrAlreadyAttached)

	_, err = s.Customers()
	assert.NoError(t, err)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "Detach is idempotent")

	_, err = s.Customers()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}

func testCatalog(t *testing.T, backend string, f Factory) {
	tests := []struct {
		name  string
		check func(t *testing.T, c types.Catalog)
	}{
		{
			name: "set then get normalizes name",
			check: func(t *testing.T, c types.Catalog) {
				require.NoError(t, c.Set(types.SectionDrinks, "Mocha", 3.5))
				item, err := c.Get(types.SectionDrinks, "MOCHA")
				require.NoError(t, err)
				assert.Equal(t, types.Item{Section: types.SectionDrinks, Name: "mocha", Price: 3.5}, item)
			},
		},
		{
			name: "set overwrites silently",
			check: func(t *testing.T, c types.Catalog) {
				require.NoError(t, c.Set(types.SectionSides, "rice", 2))
				require.NoError(t, c.Set(types.SectionSides, "Rice", 2.5))
				item, err := c.Get(types.SectionSides, "rice")
				require.NoError(t, err)
				assert.Equal(t, 2.5, item.Price)
				n, err := c.Len()
				require.NoError(t, err)
				assert.Equal(t, 1, n)
			},
		},
		{
			name: "unknown section is item not found",
			check: func(t *testing.T, c types.Catalog) {
				assert.ErrorIs(t, c.Set(types.Section("brunch"), "toast", 1), types.ErrItemNotFound)
				_, err := c.Get(types.Section("brunch"), "toast")
				assert.ErrorIs(t, err, types.ErrItemNotFound)
				assert.ErrorIs(t, c.Update(types.Section("brunch"), "toast", 1), types.ErrItemNotFound)
				assert.ErrorIs(t, c.Delete(types.Section("brunch"), "toast"), types.ErrItemNotFound)
			},
		},
		{
			name: "update existing item",
			check: func(t *testing.T, c types.Catalog) {
				require.NoError(t, c.Set(types.SectionMeals, "bibimbap", 14))
				require.NoError(t, c.Update(types.SectionMeals, "Bibimbap", 15))
				item, err := c.Get(types.SectionMeals, "bibimbap")
				require.NoError(t, err)
				assert.Equal(t, 15.0, item.Price)
			},
		},
		{
			name: "update missing item",
			check: func(t *testing.T, c types.Catalog) {
				assert.ErrorIs(t, c.Update(types.SectionMeals, "ramen", 9), types.ErrItemNotFound)
				n, err := c.Len()
				require.NoError(t, err)
				assert.Zero(t, n, "update must not insert")
			},
		},
		{
			name: "delete removes item",
			check: func(t *testing.T, c types.Catalog) {
				require.NoError(t, c.Set(types.SectionDesserts, "flan", 5))
				require.NoError(t, c.Delete(types.SectionDesserts, "FLAN"))
				_, err := c.Get(types.SectionDesserts, "flan")
				assert.ErrorIs(t, err, types.ErrItemNotFound)
			},
		},
		{
			name: "delete missing item leaves catalog unchanged",
			check: func(t *testing.T, c types.Catalog) {
				require.NoError(t, c.Set(types.SectionDesserts, "flan", 5))
				assert.ErrorIs(t, c.Delete(types.SectionDesserts, "tiramisu"), types.ErrItemNotFound)
				assert.ErrorIs(t, c.Delete(types.SectionDrinks, "flan"), types.ErrItemNotFound)
				n, err := c.Len()
				require.NoError(t, err)
				assert.Equal(t, 1, n)
			},
		},
		{
			name: "find reports every section",
			check: func(t *testing.T, c types.Catalog) {
				require.NoError(t, c.Set(types.SectionSides, "fries", 3))
				require.NoError(t, c.Set(types.SectionMeals, "fries", 5))
				found, err := c.Find("FRIES")
				require.NoError(t, err)
				assert.Equal(t, []types.Section{types.SectionMeals, types.SectionSides}, found)

				found, err = c.Find("nothing")
				require.NoError(t, err)
				assert.Empty(t, found)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := attach(t, f, backend, false)
			c, _ := tables(t, s)
			tt.check(t, c)
		})
	}
}

func testCatalogOrdering(t *testing.T, backend string, f Factory) {
	s := attach(t, f, backend, false)
	c, _ := tables(t, s)

	require.NoError(t, c.Set(types.SectionSides, "a", 1))
	require.NoError(t, c.Set(types.SectionDrinks, "b", 1))
	require.NoError(t, c.Set(types.SectionSides, "c", 1))
	require.NoError(t, c.Set(types.SectionSides, "d", 1))

	// Overwrite keeps position; remove and re-add moves to the end.
	require.NoError(t, c.Set(types.SectionSides, "a", 2))
	require.NoError(t, c.Delete(types.SectionSides, "c"))
	require.NoError(t, c.Set(types.SectionSides, "c", 3))

	menu, err := c.Menu()
	require.NoError(t, err)
	assert.Equal(t, []types.Listing{
		{Section: types.SectionDrinks, Items: []string{"b"}},
		{Section: types.SectionDesserts, Items: []string{}},
		{Section: types.SectionMeals, Items: []string{}},
		{Section: types.SectionSides, Items: []string{"a", "d", "c"}},
	}, normalize(menu))
}

// normalize replaces nil item slices with empty ones so backends compare equal.
func normalize(menu []types.Listing) []types.Listing {
	for i := range menu {
		if menu[i].Items == nil {
			menu[i].Items = []string{}
		}
	}
	return menu
}

func testCustomers(t *testing.T, backend string, f Factory) {
	john := types.Customer{ID: 123, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Age: "25"}

	tests := []struct {
		name  string
		check func(t *testing.T, c types.Customers)
	}{
		{
			name: "put then get returns the record",
			check: func(t *testing.T, c types.Customers) {
				require.NoError(t, c.Put(john))
				got, err := c.Get(123)
				require.NoError(t, err)
				assert.Equal(t, john, got)
			},
		},
		{
			name: "put overwrites",
			check: func(t *testing.T, c types.Customers) {
				require.NoError(t, c.Put(john))
				jane := types.Customer{ID: 123, Name: "Jane"}
				require.NoError(t, c.Put(jane))
				got, err := c.Get(123)
				require.NoError(t, err)
				assert.Equal(t, jane, got)
			},
		},
		{
			name: "get missing",
			check: func(t *testing.T, c types.Customers) {
				_, err := c.Get(999)
				assert.ErrorIs(t, err, types.ErrRecordNotFound)
			},
		},
		{
			name: "update changes one field",
			check: func(t *testing.T, c types.Customers) {
				require.NoError(t, c.Put(john))
				require.NoError(t, c.Update(123, types.FieldAge, "26"))
				got, err := c.Get(123)
				require.NoError(t, err)
				want := john
				want.Age = "26"
				assert.Equal(t, want, got)
			},
		},
		{
			name: "update every field",
			check: func(t *testing.T, c types.Customers) {
				require.NoError(t, c.Put(john))
				for _, field := range types.Fields {
					require.NoError(t, c.Update(123, field, "x"))
				}
				got, err := c.Get(123)
				require.NoError(t, err)
				assert.Equal(t, types.Customer{ID: 123, Name: "x", Email: "x", Phone: "x", Age: "x"}, got)
			},
		},
		{
			name: "update missing record",
			check: func(t *testing.T, c types.Customers) {
				assert.ErrorIs(t, c.Update(999, types.FieldName, "x"), types.ErrRecordNotFound)
			},
		},
		{
			name: "update unknown field leaves record unchanged",
			check: func(t *testing.T, c types.Customers) {
				require.NoError(t, c.Put(john))
				assert.ErrorIs(t, c.Update(123, types.Field("id"), "5"), types.ErrRecordNotFound)
				got, err := c.Get(123)
				require.NoError(t, err)
				assert.Equal(t, john, got)
			},
		},
		{
			name: "delete",
			check: func(t *testing.T, c types.Customers) {
				require.NoError(t, c.Put(john))
				require.NoError(t, c.Delete(123))
				_, err := c.Get(123)
				assert.ErrorIs(t, err, types.ErrRecordNotFound)
				assert.ErrorIs(t, c.Delete(123), types.ErrRecordNotFound)
				n, err := c.Len()
				require.NoError(t, err)
				assert.Zero(t, n)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := attach(t, f, backend, false)
			_, c := tables(t, s)
			tt.check(t, c)
		})
	}
}

func testSeed(t *testing.T, backend string, f Factory) {
	s := attach(t, f, backend, true)
	catalog, customers := tables(t, s)

	menu, err := catalog.Menu()
	require.NoError(t, err)
	require.Len(t, menu, len(types.Sections))
	for i, l := range menu {
		assert.Equal(t, types.Sections[i], l.Section, "each section listed once, in order")
		assert.Len(t, l.Items, seed.ItemCount(l.Section))
	}

	found, err := catalog.Find("Chai Latte")
	require.NoError(t, err)
	assert.Equal(t, []types.Section{types.SectionDrinks}, found)

	for _, want := range seed.Customers {
		got, err := customers.Get(want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
