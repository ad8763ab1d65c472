package locale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/kude/internal/locale"
)

func TestParaguay(t *testing.T) {
	assert.Equal(t, "es_PY", locale.Paraguay.String())
	assert.Equal(t, "1.234.567", locale.Paraguay.FormatNumber(decimal.NewFromInt(1234567), 0))
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		decimal  string
	}{
		{"es_PY", "es_PY", ","},
		{"es-PY", "es_PY", ","},
		{"en_US", "en_US", "."},
		{"pt", "pt", ","},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, err := locale.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l.String())
			assert.Equal(t, tt.decimal, l.DecimalSep)
		})
	}

	_, err := locale.Parse("x!y")
	require.Error(t, err)
}

func TestFromParameters(t *testing.T) {
	assert.Equal(t, locale.Paraguay, locale.FromParameters(map[string]any{}))
	assert.Equal(t, locale.Paraguay, locale.FromParameters(map[string]any{locale.ParameterKey: 42}))

	l := locale.FromParameters(map[string]any{locale.ParameterKey: "en_US"})
	assert.Equal(t, ".", l.DecimalSep)
}
