package services

import (
	"fmt"
	"testing"

	"edilmodern-erp/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		taxRate  string
		wantTax  string
		wantTot  string
	}{
		{"standard IVA 22", "1000", "22", "220", "1220"},
		{"rounding to two decimals", "100.55", "22", "22.12", "122.67"},
		{"zero rate", "500", "0", "0", "500"},
		{"reduced rate", "1000", "10", "100", "1100"},
		{"empty subtotal", "", "22", "0", "0"},
		{"non numeric subtotal", "abc", "22", "0", "0"},
		{"non numeric rate", "1000", "iva", "0", "1000"},
		{"both garbage", "x", "y", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, tot := ComputeTotals(tt.subtotal, tt.taxRate)
			assert.True(t, tax.Equal(decimal.RequireFromString(tt.wantTax)),
				"taxAmount = %s, want %s", tax, tt.wantTax)
			assert.True(t, tot.Equal(decimal.RequireFromString(tt.wantTot)),
				"total = %s, want %s", tot, tt.wantTot)
		})
	}
}

func TestComputeTotalsNeverPanics(t *testing.T) {
	for _, in := range []string{"", " ", "NaN", "1e", "€100", "--3", "1,5"} {
		tax, tot := ComputeTotals(in, in)
		assert.True(t, tax.IsZero(), "input %q: taxAmount %s", in, tax)
		assert.True(t, tot.IsZero(), "input %q: total %s", in, tot)
	}
}

func quotesWithNumbers(numbers ...string) []models.Quote {
	out := make([]models.Quote, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, models.Quote{Number: n})
	}
	return out
}

func TestNextNumber(t *testing.T) {
	assert.Equal(t, "2024/001", NextNumber(nil, 2024))

	archive := quotesWithNumbers("2024/001", "2024/002")
	assert.Equal(t, "2024/003", NextNumber(archive, 2024))

	// l'anno nuovo riparte da 001 senza reset esplicito
	assert.Equal(t, "2025/001", NextNumber(archive, 2025))
}

func TestNextNumberStrictlyIncreasing(t *testing.T) {
	var archive []models.Quote
	prev := ""
	for i := 0; i < 12; i++ {
		n := NextNumber(archive, 2024)
		assert.Greater(t, n, prev)
		archive = append(archive, models.Quote{Number: n})
		prev = n
	}
	assert.Equal(t, "2024/012", prev)
}

func TestNextNumberMixedYears(t *testing.T) {
	archive := quotesWithNumbers("2023/001", "2023/002", "2024/001")
	assert.Equal(t, "2024/002", NextNumber(archive, 2024))
	assert.Equal(t, fmt.Sprintf("%d/003", 2023), NextNumber(archive, 2023))
}
