package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field names an updatable customer record column. The record ID is not a
// Field: it is the storage key and cannot change through an update.
type Field string

// Updatable customer fields, named as the console shows them.
const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone number"
	FieldAge   Field = "age"
)

// Fields lists the updatable fields in record order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldAge}

// ParseField maps a column name to a Field. Matching ignores case and
// surrounding whitespace. Unknown columns, including "id", return an error
// wrapping ErrRecordNotFound.
func ParseField(s string) (Field, error) {
	want := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, f := range Fields {
		if f == want {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown column %q", ErrRecordNotFound, s)
}

// Customer is a customer profile. All fields other than ID are free text.
type Customer struct {
	ID    int    // Positive, equal to the storage key.
	Name  string
	Email string
	Phone string
	Age   string
}

// Get returns the value of a field.
func (c Customer) Get(f Field) (string, error) {
	switch f {
	case FieldName:
		return c.Name, nil
	case FieldEmail:
		return c.Email, nil
	case FieldPhone:
		return c.Phone, nil
	case FieldAge:
		return c.Age, nil
	}
	return "", fmt.Errorf("%w: unknown column %q", ErrRecordNotFound, f)
}

// Set overwrites a single field, leaving the others unchanged.
func (c *Customer) Set(f Field, value string) error {
	switch f {
	case FieldName:
		c.Name = value
	case FieldEmail:
		c.Email = value
	case FieldPhone:
		c.Phone = value
	case FieldAge:
		c.Age = value
	default:
		return fmt.Errorf("%w: unknown column %q", ErrRecordNotFound, f)
	}
	return nil
}

// String renders the record the way the console prints it.
func (c Customer) String() string {
	return fmt.Sprintf("{ID: %d, name: %s, email: %s, phone number: %s, age: %s}",
		c.ID, c.Name, c.Email, c.Phone, c.Age)
}

// Customers provides the customer record operations keyed by record ID.
type Customers interface {
	// Put inserts or overwrites the record stored at c.ID.
	Put(c Customer) error

	// Get returns the record. Returns ErrRecordNotFound if absent.
	Get(id int) (Customer, error)

	// Update overwrites one field of an existing record.
	// Returns ErrRecordNotFound if the record is absent.
	Update(id int, f Field, value string) error

	// Delete removes the record. Returns ErrRecordNotFound if absent.
	Delete(id int) error

	// Len returns the number of records.
	Len() (int, error)
}

// Customer errors.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid record ID")
)

// ParseRecordID coerces user text to a record ID. Surrounding whitespace is
// ignored. Returns an error wrapping ErrInvalidID unless the text is a
// positive integer.
func ParseRecordID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
