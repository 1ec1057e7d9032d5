// Package seed holds the built-in menu and customer records loaded when a
// store is attached with seeding enabled.
package seed

import (
	"fmt"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

// menuItem describes one item to seed.
type menuItem struct {
	name  string
	price float64
}

// menuSection groups seeded items under their section, in listing order.
type menuSection struct {
	section types.Section
	items   []menuItem
}

// Menu is the built-in menu, in section and listing order.
var Menu = []menuSection{
	{
		section: types.SectionDrinks,
		items: []menuItem{
			{"Boba Milk Tea", 2},
			{"Sunset Milk Tea", 4},
			{"Chai Latte", 3},
			{"Caramel Macchiato", 4},
			{"Watermelon Slushie", 2},
			{"Water", 1.5},
		},
	},
	{
		section: types.SectionDesserts,
		items: []menuItem{
			{"Chocolate Eclair", 8},
			{"Fruit Tarte", 7},
			{"Strawberry Shortcake", 10},
			{"Cheesecake", 9},
			{"Panna Cotta", 6},
			{"Croissant", 10},
			{"Oreo Croffle", 7},
			{"Choco-Mousse", 12},
		},
	},
	{
		section: types.SectionMeals,
		items: []menuItem{
			{"Hot Honey Chicken Plate", 12},
			{"Miso Glazed Salmon Plate", 13},
			{"Chicken Nugget", 8},
			{"Corn Dog", 3},
			{"Bibimbap", 14},
			{"Chicken Salad", 8.5},
		},
	},
	{
		section: types.SectionSides,
		items: []menuItem{
			{"French Fries", 3},
			{"White Rice", 2},
			{"Garlic French Fries", 4.5},
			{"Roasted Sweet Potatoes", 3.5},
			{"Toppokki", 6.5},
		},
	},
}

// Customers is the built-in customer table.
var Customers = []types.Customer{
	{ID: 123, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Age: "25"},
	{ID: 456, Name: "Jane Smith", Email: "jane@example.com", Phone: "987-654-3210", Age: "30"},
	{ID: 789, Name: "Lauriane Houndjahoue", Email: "lauri@example.com", Phone: "111-222-3333", Age: "22"},
}

// ItemCount returns the number of seeded menu items in section.
func ItemCount(section types.Section) int {
	for _, ms := range Menu {
		if ms.section == section {
			return len(ms.items)
		}
	}
	return 0
}

// Load writes the built-in rows into the given tables. Item names are
// normalized by the catalog, so seeded items are searchable in any casing.
func Load(catalog types.Catalog, customers types.Customers) error {
	for _, ms := range Menu {
		for _, it := range ms.items {
			if err := catalog.Set(ms.section, it.name, it.price); err != nil {
				return fmt.Errorf("seeding item %s/%s: %w", ms.section, it.name, err)
			}
		}
	}
	for _, c := range Customers {
		if err := customers.Put(c); err != nil {
			return fmt.Errorf("seeding customer %d: %w", c.ID, err)
		}
	}
	return nil
}
