package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromString parses decimal from string, trimming surrounding whitespace
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// RoundPYG rounds to whole guaraníes (PYG has no minor unit)
func RoundPYG(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Places returns the number of significant fraction digits of d
func Places(d decimal.Decimal) int32 {
	s := d.String()
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return int32(len(s) - i - 1)
}

// AmountPlaces returns 0 for whole amounts and 2 otherwise
func AmountPlaces(d decimal.Decimal) int32 {
	if d.Equal(d.Truncate(0)) {
		return 0
	}
	return 2
}

// Format renders d with a fixed number of places using the given
// decimal and grouping separators.
// Ej: Format(1234567.5, 2, ",", ".") -> "1.234.567,50"
func Format(d decimal.Decimal, places int32, decimalSep, groupSep string) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac, _ := strings.Cut(s, ".")
	out := group(intPart, groupSep)
	if frac != "" {
		out += decimalSep + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// group inserts sep every three digits from the right
func group(digits, sep string) string {
	n := len(digits)
	if n <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3*len(sep))
	for i, c := range []byte(digits) {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(c)
	}
	return b.String()
}
