package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/kude/internal/decimal"
)

func TestFromString(t *testing.T) {
	d, err := decimal.FromString(" 123456.78\n")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromInt(50000),
		dec.NewFromInt(18000),
		dec.RequireFromString("0.5"),
	}
	assert.True(t, decimal.Sum(values).Equal(dec.RequireFromString("68000.5")))
	assert.True(t, decimal.Sum(nil).IsZero())
}

func TestRoundPYG(t *testing.T) {
	assert.True(t, decimal.RoundPYG(dec.RequireFromString("1500.5")).Equal(dec.NewFromInt(1501)))
	assert.True(t, decimal.RoundPYG(dec.RequireFromString("1500.4")).Equal(dec.NewFromInt(1500)))
}

func TestPlaces(t *testing.T) {
	assert.Equal(t, int32(0), decimal.Places(dec.NewFromInt(2)))
	assert.Equal(t, int32(1), decimal.Places(dec.RequireFromString("1.5")))
	assert.Equal(t, int32(3), decimal.Places(dec.RequireFromString("0.125")))
}

func TestAmountPlaces(t *testing.T) {
	assert.Equal(t, int32(0), decimal.AmountPlaces(dec.NewFromInt(25000)))
	assert.Equal(t, int32(2), decimal.AmountPlaces(dec.RequireFromString("12.5")))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		places   int32
		expected string
	}{
		{"small", "250", 0, "250"},
		{"thousands", "25000", 0, "25.000"},
		{"millions", "1000000", 0, "1.000.000"},
		{"fraction", "1234567.5", 2, "1.234.567,50"},
		{"negative", "-18000", 0, "-18.000"},
		{"rounding", "999.999", 2, "1.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decimal.Format(dec.RequireFromString(tt.value), tt.places, ",", ".")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_NoGrouping(t *testing.T) {
	assert.Equal(t, "1234.50", decimal.Format(dec.RequireFromString("1234.5"), 2, ".", ""))
}
