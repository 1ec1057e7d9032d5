package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Item is a single menu entry.
type Item struct {
	Section Section
	Name    string  // Lowercase, unique within Section.
	Price   float64 // Finite, non-negative.
}

// Listing is one section of the full menu with its item names in insertion
// order.
type Listing struct {
	Section Section
	Items   []string
}

// Catalog provides the menu operations over section -> item -> price.
// Item names are normalized with NormalizeItemName by every method.
type Catalog interface {
	// Set creates or overwrites an item. An overwritten item keeps its
	// position in the listing order.
	Set(section Section, name string, price float64) error

	// Get returns the item. Returns ErrItemNotFound if absent.
	Get(section Section, name string) (Item, error)

	// Update changes the price of an existing item.
	// Returns ErrItemNotFound if absent.
	Update(section Section, name string, price float64) error

	// Delete removes an item. Returns ErrItemNotFound if absent.
	Delete(section Section, name string) error

	// Find returns every section holding name, in section order. An empty
	// slice means no section holds it.
	Find(name string) ([]Section, error)

	// Menu returns every section once, in section order.
	Menu() ([]Listing, error)

	// Len returns the number of items across all sections.
	Len() (int, error)
}

// Catalog errors.
var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidPrice = errors.New("invalid price")
)

// NormalizeItemName returns the stored form of an item name.
func NormalizeItemName(name string) string {
	return strings.ToLower(name)
}

// ParsePrice coerces user text to a price. Surrounding whitespace is
// ignored. Returns an error wrapping ErrInvalidPrice for text that is not a
// number, or is NaN, infinite, or negative.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return p, nil
}
