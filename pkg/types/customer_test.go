package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "123", want: 123},
		{name: "whitespace trimmed", input: " 456 ", want: 456},
		{name: "word", input: "abc", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-7", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecordID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{input: "name", want: FieldName},
		{input: "EMAIL", want: FieldEmail},
		{input: "phone number", want: FieldPhone},
		{input: " age ", want: FieldAge},
		{input: "id", wantErr: true},
		{input: "ID", wantErr: true},
		{input: "address", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRecordNotFound)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomerSetLeavesOtherFields(t *testing.T) {
	c := Customer{ID: 123, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Age: "25"}

	require.NoError(t, c.Set(FieldAge, "26"))

	assert.Equal(t, Customer{ID: 123, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Age: "26"}, c)
}

func TestCustomerSetUnknownField(t *testing.T) {
	c := Customer{ID: 1, Name: "A"}
	before := c

	err := c.Set(Field("ID"), "2")

	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, before, c, "record must not change on error")
}

func TestCustomerGet(t *testing.T) {
	c := Customer{ID: 1, Name: "A", Email: "a@x", Phone: "1", Age: "9"}
	for _, f := range Fields {
		_, err := c.Get(f)
		assert.NoError(t, err)
	}
	v, err := c.Get(FieldPhone)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = c.Get(Field("id"))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCustomerString(t *testing.T) {
	c := Customer{ID: 123, Name: "John Doe", Email: "john@example.com", Phone: "123-456-7890", Age: "25"}
	assert.Equal(t,
		"{ID: 123, name: John Doe, email: john@example.com, phone number: 123-456-7890, age: 25}",
		c.String())
}
