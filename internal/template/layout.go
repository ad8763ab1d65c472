package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// GridColumns is the width of a layout row
const GridColumns = 12

// Column kinds
const (
	KindText   = "text"
	KindNumber = "number"
	KindAmount = "amount"
)

// Alignments
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Layout describes how a filled report is laid out
type Layout struct {
	Title          string        `yaml:"title"`
	PageSize       string        `yaml:"page_size"`
	Orientation    string        `yaml:"orientation"`
	FontSize       float64       `yaml:"font_size"`
	Header         []HeaderField `yaml:"header"`
	Columns        []Column      `yaml:"columns"`
	QR             string        `yaml:"qr"`
	Footer         string        `yaml:"footer"`
	ShowParameters bool          `yaml:"show_parameters"`
}

// HeaderField prints a label and a value taken either from a report
// parameter or from an absolute path in the document.
// With OmitEmpty the line is left out when the value is empty.
type HeaderField struct {
	Label     string `yaml:"label"`
	Param     string `yaml:"param"`
	XPath     string `yaml:"xpath"`
	OmitEmpty bool   `yaml:"omit_empty"`
}

// Column is one column of the line item table.
// Field is evaluated relative to each row.
type Column struct {
	Label string `yaml:"label"`
	Field string `yaml:"field"`
	Width int    `yaml:"width"`
	Align string `yaml:"align"`
	Kind  string `yaml:"kind"`
	Total bool   `yaml:"total"`
}

// Numeric reports whether the column holds numbers
func (c Column) Numeric() bool {
	return c.Kind == KindNumber || c.Kind == KindAmount
}

// LoadLayout reads and validates a layout file
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes a YAML layout, applies defaults and validates it.
// Unknown keys are rejected.
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	layout.applyDefaults()
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

func (l *Layout) applyDefaults() {
	if l.PageSize == "" {
		l.PageSize = "a4"
	}
	if l.Orientation == "" {
		l.Orientation = "portrait"
	}
	if l.FontSize == 0 {
		l.FontSize = 9
	}
	for i := range l.Columns {
		c := &l.Columns[i]
		if c.Kind == "" {
			c.Kind = KindText
		}
		if c.Align == "" {
			if c.Numeric() {
				c.Align = AlignRight
			} else {
				c.Align = AlignLeft
			}
		}
	}
}

// Validate checks the layout for errors the renderer cannot recover from
func (l *Layout) Validate() error {
	var errs []error

	switch strings.ToLower(l.PageSize) {
	case "a4", "a5", "letter", "legal":
	default:
		errs = append(errs, fmt.Errorf("unsupported page_size %q", l.PageSize))
	}
	switch l.Orientation {
	case "portrait", "landscape":
	default:
		errs = append(errs, fmt.Errorf("unsupported orientation %q", l.Orientation))
	}
	if l.FontSize < 0 {
		errs = append(errs, fmt.Errorf("font_size must be positive"))
	}

	for i, h := range l.Header {
		if (h.Param == "") == (h.XPath == "") {
			errs = append(errs, fmt.Errorf("header[%d] %q: exactly one of param or xpath is required", i, h.Label))
		}
	}

	if len(l.Columns) == 0 {
		errs = append(errs, fmt.Errorf("at least one column is required"))
	}
	width := 0
	for i, c := range l.Columns {
		if c.Field == "" {
			errs = append(errs, fmt.Errorf("columns[%d] %q: field is required", i, c.Label))
		}
		if c.Width < 1 || c.Width > GridColumns {
			errs = append(errs, fmt.Errorf("columns[%d] %q: width must be between 1 and %d", i, c.Label, GridColumns))
		}
		switch c.Kind {
		case KindText, KindNumber, KindAmount:
		default:
			errs = append(errs, fmt.Errorf("columns[%d] %q: unsupported kind %q", i, c.Label, c.Kind))
		}
		switch c.Align {
		case AlignLeft, AlignCenter, AlignRight:
		default:
			errs = append(errs, fmt.Errorf("columns[%d] %q: unsupported align %q", i, c.Label, c.Align))
		}
		if c.Total && !c.Numeric() {
			errs = append(errs, fmt.Errorf("columns[%d] %q: total requires a numeric kind", i, c.Label))
		}
		width += c.Width
	}
	if width > GridColumns {
		errs = append(errs, fmt.Errorf("column widths add up to %d, maximum is %d", width, GridColumns))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid template: %w", errors.Join(errs...))
	}
	return nil
}

// HasTotals reports whether any column is totalled
func (l *Layout) HasTotals() bool {
	for _, c := range l.Columns {
		if c.Total {
			return true
		}
	}
	return false
}
