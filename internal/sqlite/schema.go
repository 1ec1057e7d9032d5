package sqlite

import "github.com/mesh-intelligence/cafe/pkg/types"

// Schema DDL for both tables.
const (
	createMenuItems = `CREATE TABLE menu_items (
    item_id INTEGER PRIMARY KEY AUTOINCREMENT,
    section TEXT NOT NULL,
    name TEXT NOT NULL,
    price REAL NOT NULL CHECK (price >= 0),
    UNIQUE (section, name)
);`

	createCustomers = `CREATE TABLE customers (
    customer_id INTEGER PRIMARY KEY CHECK (customer_id > 0),
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    age TEXT NOT NULL
);`

	idxMenuItemsName = `CREATE INDEX idx_menu_items_name ON menu_items(name);`
)

// schemaDDL lists all statements run on Attach, in order.
var schemaDDL = []string{
	createMenuItems,
	createCustomers,
	idxMenuItemsName,
}

// customerColumns maps each updatable field to its column. Update builds
// its statement from this map only, never from caller text.
var customerColumns = map[types.Field]string{
	types.FieldName:  "name",
	types.FieldEmail: "email",
	types.FieldPhone: "phone",
	types.FieldAge:   "age",
}
