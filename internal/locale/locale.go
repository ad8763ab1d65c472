// Package locale describes the report locale injected into every render.
package locale

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	money "github.com/rezonia/kude/internal/decimal"
)

// ParameterKey is the render parameter holding the report locale
const ParameterKey = "REPORT_LOCALE"

// Locale is a language tag with its number separators
type Locale struct {
	Tag        language.Tag
	DecimalSep string
	GroupSep   string
}

// Paraguay is Spanish as used in Paraguay, the locale of every KuDE
var Paraguay = Locale{
	Tag:        language.MustParse("es-PY"),
	DecimalSep: ",",
	GroupSep:   ".",
}

// commaDecimal lists base languages that write 1.234,56
var commaDecimal = map[string]bool{
	"es": true, "pt": true, "de": true, "it": true, "fr": true, "nl": true, "gn": true,
}

// Parse accepts both "es_PY" and "es-PY" forms
func Parse(s string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	base, _ := tag.Base()
	if commaDecimal[base.String()] {
		return Locale{Tag: tag, DecimalSep: ",", GroupSep: "."}, nil
	}
	return Locale{Tag: tag, DecimalSep: ".", GroupSep: ","}, nil
}

// String renders the locale as language_REGION
func (l Locale) String() string {
	base, _ := l.Tag.Base()
	region, conf := l.Tag.Region()
	if conf != language.Exact {
		return base.String()
	}
	return base.String() + "_" + region.String()
}

// FormatNumber formats d with the locale separators
func (l Locale) FormatNumber(d decimal.Decimal, places int32) string {
	return money.Format(d, places, l.DecimalSep, l.GroupSep)
}

// FromParameters reads the report locale from render parameters,
// falling back to Paraguay
func FromParameters(params map[string]any) Locale {
	raw, ok := params[ParameterKey]
	if !ok {
		return Paraguay
	}
	switch v := raw.(type) {
	case Locale:
		return v
	case string:
		if l, err := Parse(v); err == nil {
			return l
		}
	}
	return Paraguay
}
