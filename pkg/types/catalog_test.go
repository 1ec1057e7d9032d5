package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "4", want: 4},
		{name: "decimal", input: "3.5", want: 3.5},
		{name: "whitespace trimmed", input: " 2.25\t", want: 2.25},
		{name: "zero is free", input: "0", want: 0},
		{name: "exponent", input: "1e1", want: 10},
		{name: "word", input: "cheap", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "infinity", input: "inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeItemName(t *testing.T) {
	assert.Equal(t, "boba milk tea", NormalizeItemName("Boba Milk TEA"))
}
