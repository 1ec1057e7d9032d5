package memory

import (
	"sync"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

var _ types.Customers = (*customersTable)(nil)

type customersTable struct {
	mu      sync.RWMutex
	records map[int]types.Customer
}

func newCustomersTable() *customersTable {
	return &customersTable{records: make(map[int]types.Customer)}
}

func (ct *customersTable) Put(c types.Customer) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	ct.records[c.ID] = c
	return nil
}

func (ct *customersTable) Get(id int) (types.Customer, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	c, ok := ct.records[id]
	if !ok {
		return types.Customer{}, types.ErrRecordNotFound
	}
	return c, nil
}

func (ct *customersTable) Update(id int, f types.Field, value string) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	c, ok := ct.records[id]
	if !ok {
		return types.ErrRecordNotFound
	}
	if err := c.Set(f, value); err != nil {
		return err
	}
	ct.records[id] = c
	return nil
}

func (ct *customersTable) Delete(id int) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	if _, ok := ct.records[id]; !ok {
		return types.ErrRecordNotFound
	}
	delete(ct.records, id)
	return nil
}

func (ct *customersTable) Len() (int, error) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	return len(ct.records), nil
}
