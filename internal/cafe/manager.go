// Package cafe implements the menu and customer operations the console
// dispatches to. Every operation takes raw user text, coerces it, and
// returns a typed result or an error wrapping one of the sentinel errors in
// pkg/types.
package cafe

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

// allItems is the search query that lists the whole menu.
const allItems = "all"

// Manager runs cafe operations against an attached Store.
type Manager struct {
	store  types.Store
	logger *slog.Logger
}

// NewManager returns a Manager over store. A nil logger discards output.
func NewManager(store types.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: store, logger: logger}
}

// SearchResult is the outcome of a menu search. When All is set, Menu
// holds the full listing; otherwise Found holds every matching section.
type SearchResult struct {
	All   bool
	Menu  []types.Listing
	Found []types.Section
}

// AddItem creates or overwrites an item. The price is checked before the
// section, so a bad price is reported even for an unknown section.
func (m *Manager) AddItem(section, name, price string) (types.Item, error) {
	p, err := types.ParsePrice(price)
	if err != nil {
		return types.Item{}, err
	}
	sec, err := types.ParseSection(section)
	if err != nil {
		return types.Item{}, err
	}
	catalog, err := m.store.Catalog()
	if err != nil {
		return types.Item{}, err
	}

	item := types.Item{Section: sec, Name: types.NormalizeItemName(name), Price: p}
	if err := catalog.Set(sec, item.Name, p); err != nil {
		return types.Item{}, fmt.Errorf("adding %s/%s: %w", sec, item.Name, err)
	}
	m.logger.Debug("item added", "section", sec, "item", item.Name, "price", p)
	return item, nil
}

// RemoveItem deletes an item.
func (m *Manager) RemoveItem(section, name string) (types.Item, error) {
	sec, err := types.ParseSection(section)
	if err != nil {
		return types.Item{}, err
	}
	catalog, err := m.store.Catalog()
	if err != nil {
		return types.Item{}, err
	}

	item, err := catalog.Get(sec, name)
	if err != nil {
		return types.Item{}, err
	}
	if err := catalog.Delete(sec, item.Name); err != nil {
		return types.Item{}, fmt.Errorf("removing %s/%s: %w", sec, item.Name, err)
	}
	m.logger.Debug("item removed", "section", sec, "item", item.Name)
	return item, nil
}

// UpdateItem changes the price of an existing item. As with AddItem, the
// price is checked first.
func (m *Manager) UpdateItem(section, name, price string) (types.Item, error) {
	p, err := types.ParsePrice(price)
	if err != nil {
		return types.Item{}, err
	}
	sec, err := types.ParseSection(section)
	if err != nil {
		return types.Item{}, err
	}
	catalog, err := m.store.Catalog()
	if err != nil {
		return types.Item{}, err
	}

	item := types.Item{Section: sec, Name: types.NormalizeItemName(name), Price: p}
	if err := catalog.Update(sec, item.Name, p); err != nil {
		return types.Item{}, fmt.Errorf("updating %s/%s: %w", sec, item.Name, err)
	}
	m.logger.Debug("item updated", "section", sec, "item", item.Name, "price", p)
	return item, nil
}

// SearchItems lists the whole menu when query is "all" in any casing, and
// otherwise finds every section holding the item. A miss returns
// ErrItemNotFound.
func (m *Manager) SearchItems(query string) (SearchResult, error) {
	catalog, err := m.store.Catalog()
	if err != nil {
		return SearchResult{}, err
	}

	if strings.ToLower(query) == allItems {
		menu, err := catalog.Menu()
		if err != nil {
			return SearchResult{}, fmt.Errorf("listing menu: %w", err)
		}
		return SearchResult{All: true, Menu: menu}, nil
	}

	found, err := catalog.Find(query)
	if err != nil {
		return SearchResult{}, fmt.Errorf("searching %q: %w", query, err)
	}
	m.logger.Debug("item search", "query", query, "hits", len(found))
	if len(found) == 0 {
		return SearchResult{}, fmt.Errorf("%w: %q", types.ErrItemNotFound, query)
	}
	return SearchResult{Found: found}, nil
}

// AddRecord inserts or overwrites the record at c.ID.
func (m *Manager) AddRecord(c types.Customer) (types.Customer, error) {
	if c.ID < 1 {
		return types.Customer{}, fmt.Errorf("%w: %d", types.ErrInvalidID, c.ID)
	}
	customers, err := m.store.Customers()
	if err != nil {
		return types.Customer{}, err
	}
	if err := customers.Put(c); err != nil {
		return types.Customer{}, fmt.Errorf("adding record %d: %w", c.ID, err)
	}
	m.logger.Debug("record added", "id", c.ID)
	return c, nil
}

// RemoveRecord deletes the record with the given ID and returns the parsed
// ID.
func (m *Manager) RemoveRecord(id string) (int, error) {
	n, err := types.ParseRecordID(id)
	if err != nil {
		return 0, err
	}
	customers, err := m.store.Customers()
	if err != nil {
		return n, err
	}
	if err := customers.Delete(n); err != nil {
		return n, err
	}
	m.logger.Debug("record removed", "id", n)
	return n, nil
}

// UpdateRecord overwrites one existing column of an existing record. An
// unknown record or column returns ErrRecordNotFound and changes nothing.
func (m *Manager) UpdateRecord(id, column, value string) (types.Customer, error) {
	n, err := types.ParseRecordID(id)
	if err != nil {
		return types.Customer{}, err
	}
	field, err := types.ParseField(column)
	if err != nil {
		return types.Customer{}, err
	}
	customers, err := m.store.Customers()
	if err != nil {
		return types.Customer{}, err
	}
	if err := customers.Update(n, field, value); err != nil {
		return types.Customer{}, err
	}
	m.logger.Debug("record updated", "id", n, "column", field)
	return customers.Get(n)
}

// SearchRecord returns the full record with the given ID. The returned ID
// is valid whenever the text parsed, even if the record is missing.
func (m *Manager) SearchRecord(id string) (types.Customer, error) {
	n, err := types.ParseRecordID(id)
	if err != nil {
		return types.Customer{}, err
	}
	customers, err := m.store.Customers()
	if err != nil {
		return types.Customer{ID: n}, err
	}
	c, err := customers.Get(n)
	if err != nil {
		return types.Customer{ID: n}, err
	}
	return c, nil
}
