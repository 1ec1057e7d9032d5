package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

var _ types.Customers = (*customersTable)(nil)

type customersTable struct {
	db *sql.DB
}

func (ct *customersTable) Put(c types.Customer) error {
	_, err := ct.db.Exec(
		`INSERT INTO customers (customer_id, name, email, phone, age) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (customer_id) DO UPDATE SET
		     name = excluded.name, email = excluded.email,
		     phone = excluded.phone, age = excluded.age`,
		c.ID, c.Name, c.Email, c.Phone, c.Age,
	)
	if err != nil {
		return fmt.Errorf("putting customer %d: %w", c.ID, err)
	}
	return nil
}

func (ct *customersTable) Get(id int) (types.Customer, error) {
	c := types.Customer{ID: id}
	err := ct.db.QueryRow(
		"SELECT name, email, phone, age FROM customers WHERE customer_id = ?", id,
	).Scan(&c.Name, &c.Email, &c.Phone, &c.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Customer{}, types.ErrRecordNotFound
		}
		return types.Customer{}, fmt.Errorf("getting customer %d: %w", id, err)
	}
	return c, nil
}

func (ct *customersTable) Update(id int, f types.Field, value string) error {
	column, ok := customerColumns[f]
	if !ok {
		return fmt.Errorf("%w: unknown column %q", types.ErrRecordNotFound, f)
	}

	res, err := ct.db.Exec(
		"UPDATE customers SET "+column+" = ? WHERE customer_id = ?",
		value, id,
	)
	if err != nil {
		return fmt.Errorf("updating customer %d: %w", id, err)
	}
	return requireAffected(res, types.ErrRecordNotFound)
}

func (ct *customersTable) Delete(id int) error {
	res, err := ct.db.Exec("DELETE FROM customers WHERE customer_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting customer %d: %w", id, err)
	}
	return requireAffected(res, types.ErrRecordNotFound)
}

func (ct *customersTable) Len() (int, error) {
	var n int
	if err := ct.db.QueryRow("SELECT COUNT(*) FROM customers").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}
	return n, nil
}
