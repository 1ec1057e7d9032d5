package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Section
		wantErr error
	}{
		{name: "lowercase", input: "drinks", want: SectionDrinks},
		{name: "mixed case", input: "DeSSerts", want: SectionDesserts},
		{name: "surrounding whitespace", input: "  sides ", want: SectionSides},
		{name: "unknown section", input: "snacks", wantErr: ErrItemNotFound},
		{name: "empty", input: "", wantErr: ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSection(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionOrdinal(t *testing.T) {
	assert.Equal(t, 0, SectionDrinks.Ordinal())
	assert.Equal(t, 3, SectionSides.Ordinal())
	assert.Equal(t, -1, Section("brunch").Ordinal())
	assert.False(t, Section("brunch").Valid())
	assert.True(t, SectionMeals.Valid())
}

func TestSectionTitle(t *testing.T) {
	assert.Equal(t, "Drinks", SectionDrinks.Title())
	assert.Equal(t, "", Section("").Title())
}
