// Package params decodes caller-supplied render parameters.
package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rezonia/kude/internal/locale"
	"github.com/rezonia/kude/internal/model"
)

// DateLayout is the only date format recognised in parameter values
const DateLayout = "2006-01-02T15:04:05"

// Decode parses a JSON object into a parameter map.
// Strings in DateLayout become time.Time; numbers stay json.Number.
// Empty input yields an empty map.
func Decode(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, model.NewParameterDecodeError(raw, err)
	}
	if dec.More() {
		return nil, model.NewParameterDecodeError(raw, errors.New("trailing data after object"))
	}
	if out == nil {
		out = map[string]any{}
	}

	for k, v := range out {
		out[k] = convertDates(v)
	}
	return out, nil
}

// Merge decodes raw and injects the report locale, overwriting any value
// the caller supplied for it. A decode failure is returned alongside an
// empty map carrying only the locale; callers log it and carry on.
func Merge(raw string) (map[string]any, error) {
	out, err := Decode(raw)
	if err != nil {
		out = map[string]any{}
	}
	out[locale.ParameterKey] = locale.Paraguay
	return out, err
}

func convertDates(v any) any {
	switch val := v.(type) {
	case string:
		if t, err := time.ParseInLocation(DateLayout, val, time.Local); err == nil {
			return t
		}
		return val
	case map[string]any:
		for k, inner := range val {
			val[k] = convertDates(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = convertDates(inner)
		}
		return val
	default:
		return v
	}
}

// Encode renders params as indented JSON for display
func Encode(params map[string]any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	display := make(map[string]any, len(params))
	for k, v := range params {
		switch val := v.(type) {
		case time.Time:
			display[k] = val.Format(DateLayout)
		case locale.Locale:
			display[k] = val.String()
		default:
			display[k] = v
		}
	}
	if err := enc.Encode(display); err != nil {
		return "{}"
	}
	return strings.TrimSpace(buf.String())
}
