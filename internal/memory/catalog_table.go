package memory

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

var _ types.Catalog = (*catalogTable)(nil)

// sectionItems keeps prices by name plus the insertion order of names.
type sectionItems struct {
	order  []string
	prices map[string]float64
}

type catalogTable struct {
	mu       sync.RWMutex
	sections map[types.Section]*sectionItems
}

func newCatalogTable() *catalogTable {
	ct := &catalogTable{sections: make(map[types.Section]*sectionItems, len(types.Sections))}
	for _, s := range types.Sections {
		ct.sections[s] = &sectionItems{prices: make(map[string]float64)}
	}
	return ct
}

// lookup returns the section's items, or ErrItemNotFound for a section
// outside the fixed set.
func (ct *catalogTable) lookup(section types.Section) (*sectionItems, error) {
	si, ok := ct.sections[section]
	if !ok {
		return nil, types.ErrItemNotFound
	}
	return si, nil
}

func (ct *catalogTable) Set(section types.Section, name string, price float64) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	si, err := ct.lookup(section)
	if err != nil {
		return err
	}
	name = types.NormalizeItemName(name)
	if _, exists := si.prices[name]; !exists {
		si.order = append(si.order, name)
	}
	si.prices[name] = price
	return nil
}

func (ct *catalogTable) Get(section types.Section, name string) (types.Item, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	si, err := ct.lookup(section)
	if err != nil {
		return types.Item{}, err
	}
	name = types.NormalizeItemName(name)
	price, ok := si.prices[name]
	if !ok {
		return types.Item{}, types.ErrItemNotFound
	}
	return types.Item{Section: section, Name: name, Price: price}, nil
}

func (ct *catalogTable) Update(section types.Section, name string, price float64) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	si, err := ct.lookup(section)
	if err != nil {
		return err
	}
	name = types.NormalizeItemName(name)
	if _, ok := si.prices[name]; !ok {
		return types.ErrItemNotFound
	}
	si.prices[name] = price
	return nil
}

func (ct *catalogTable) Delete(section types.Section, name string) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	si, err := ct.lookup(section)
	if err != nil {
		return err
	}
	name = types.NormalizeItemName(name)
	if _, ok := si.prices[name]; !ok {
		return types.ErrItemNotFound
	}
	delete(si.prices, name)
	si.order = slices.DeleteFunc(si.order, func(n string) bool { return n == name })
	return nil
}

func (ct *catalogTable) Find(name string) ([]types.Section, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	name = types.NormalizeItemName(name)
	var found []types.Section
	for _, s := range types.Sections {
		if _, ok := ct.sections[s].prices[name]; ok {
			found = append(found, s)
		}
	}
	return found, nil
}

func (ct *catalogTable) Menu() ([]types.Listing, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	listings := make([]types.Listing, 0, len(types.Sections))
	for _, s := range types.Sections {
		listings = append(listings, types.Listing{
			Section: s,
			Items:   slices.Clone(ct.sections[s].order),
		})
	}
	return listings, nil
}

func (ct *catalogTable) Len() (int, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	n := 0
	for _, si := range ct.sections {
		n += len(si.prices)
	}
	return n, nil
}
