package selling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSale(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SaleFields
		ok    bool
	}{
		{
			name:  "plain command",
			input: "#sale Katan Butidar 4500",
			want:  SaleFields{SariType: "Katan", Design: "Butidar", Price: "4500"},
			ok:    true,
		},
		{
			name:  "rupee sign before price",
			input: "#sale Organza Jangla ₹12000",
			want:  SaleFields{SariType: "Organza", Design: "Jangla", Price: "12000"},
			ok:    true,
		},
		{
			name:  "command inside a longer message",
			input: "aaj ki bikri: #sale   Georgette Floral_2 3100 dhanyavad",
			want:  SaleFields{SariType: "Georgette", Design: "Floral_2", Price: "3100"},
			ok:    true,
		},
		{
			name:  "unicode words",
			input: "#sale कटान बूटीदार 4500",
			want:  SaleFields{SariType: "कटान", Design: "बूटीदार", Price: "4500"},
			ok:    true,
		},
		{
			name:  "no-break space separators",
			input: "#sale\u00a0Katan\u00a0Butidar\u00a04500",
			want:  SaleFields{SariType: "Katan", Design: "Butidar", Price: "4500"},
			ok:    true,
		},
		{
			name:  "narrow no-break space separators",
			input: "#sale\u202fTissue\u202fMeenakari\u202f₹8000",
			want:  SaleFields{SariType: "Tissue", Design: "Meenakari", Price: "8000"},
			ok:    true,
		},
		{
			name:  "missing price",
			input: "#sale Katan Butidar",
		},
		{
			name:  "non numeric price",
			input: "#sale Katan Butidar fortyfive",
		},
		{
			name:  "marker only",
			input: "#sale",
		},
		{
			name:  "no marker",
			input: "Katan Butidar 4500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSale(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
