package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/cafe/pkg/types"
)

var _ types.Catalog = (*catalogTable)(nil)

type catalogTable struct {
	db *sql.DB
}

// Set upserts an item. ON CONFLICT keeps the row's item_id, so an
// overwritten item keeps its listing position.
func (ct *catalogTable) Set(section types.Section, name string, price float64) error {
	if !section.Valid() {
		return types.ErrItemNotFound
	}
	name = types.NormalizeItemName(name)

	_, err := ct.db.Exec(
		`INSERT INTO menu_items (section, name, price) VALUES (?, ?, ?)
		 ON CONFLICT (section, name) DO UPDATE SET price = excluded.price`,
		string(section), name, price,
	)
	if err != nil {
		return fmt.Errorf("setting item %s/%s: %w", section, name, err)
	}
	return nil
}

func (ct *catalogTable) Get(section types.Section, name string) (types.Item, error) {
	if !section.Valid() {
		return types.Item{}, types.ErrItemNotFound
	}
	name = types.NormalizeItemName(name)

	item := types.Item{Section: section, Name: name}
	err := ct.db.QueryRow(
		"SELECT price FROM menu_items WHERE section = ? AND name = ?",
		string(section), name,
	).Scan(&item.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Item{}, types.ErrItemNotFound
		}
		return types.Item{}, fmt.Errorf("getting item %s/%s: %w", section, name, err)
	}
	return item, nil
}

func (ct *catalogTable) Update(section types.Section, name string, price float64) error {
	if !section.Valid() {
		return types.ErrItemNotFound
	}
	name = types.NormalizeItemName(name)

	res, err := ct.db.Exec(
		"UPDATE menu_items SET price = ? WHERE section = ? AND name = ?",
		price, string(section), name,
	)
	if err != nil {
		return fmt.Errorf("updating item %s/%s: %w", section, name, err)
	}
	return requireAffected(res, types.ErrItemNotFound)
}

func (ct *catalogTable) Delete(section types.Section, name string) error {
	if !section.Valid() {
		return types.ErrItemNotFound
	}
	name = types.NormalizeItemName(name)

	res, err := ct.db.Exec(
		"DELETE FROM menu_items WHERE section = ? AND name = ?",
		string(section), name,
	)
	if err != nil {
		return fmt.Errorf("deleting item %s/%s: %w", section, name, err)
	}
	return requireAffected(res, types.ErrItemNotFound)
}

func (ct *catalogTable) Find(name string) ([]types.Section, error) {
	rows, err := ct.db.Query(
		"SELECT section FROM menu_items WHERE name = ?",
		types.NormalizeItemName(name),
	)
	if err != nil {
		return nil, fmt.Errorf("finding item %q: %w", name, err)
	}
	defer rows.Close()

	hits := make(map[types.Section]bool)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		hits[types.Section(s)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}

	var found []types.Section
	for _, s := range types.Sections {
		if hits[s] {
			found = append(found, s)
		}
	}
	return found, nil
}

func (ct *catalogTable) Menu() ([]types.Listing, error) {
	rows, err := ct.db.Query("SELECT section, name FROM menu_items ORDER BY item_id")
	if err != nil {
		return nil, fmt.Errorf("listing menu: %w", err)
	}
	defer rows.Close()

	bySection := make(map[types.Section][]string)
	for rows.Next() {
		var s, name string
		if err := rows.Scan(&s, &name); err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		bySection[types.Section(s)] = append(bySection[types.Section(s)], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu: %w", err)
	}

	listings := make([]types.Listing, 0, len(types.Sections))
	for _, s := range types.Sections {
		listings = append(listings, types.Listing{Section: s, Items: bySection[s]})
	}
	return listings, nil
}

func (ct *catalogTable) Len() (int, error) {
	var n int
	if err := ct.db.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting menu items: %w", err)
	}
	return n, nil
}

// requireAffected returns notFound when res touched no rows.
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
