package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	money "github.com/rezonia/kude/internal/decimal"
	"github.com/rezonia/kude/internal/locale"
	"github.com/rezonia/kude/internal/params"
	"github.com/rezonia/kude/internal/template"
)

// filler carries the state of one Fill call
type filler struct {
	layout *template.Layout
	params map[string]any
	src    DataSource
	loc    locale.Locale

	count  int
	values map[int][]decimal.Decimal
}

// CurrencyPath locates the operation currency of the document
const CurrencyPath = "/rDE/DE/gDatGralOpe/gOpeCom/cMoneOpe"

func (f *filler) titleRows() []core.Row {
	if f.layout.Title == "" {
		return nil
	}
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(f.layout.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
		)),
	}
}

func (f *filler) headerRows() []core.Row {
	rows := make([]core.Row, 0, len(f.layout.Header))
	for _, h := range f.layout.Header {
		value := f.headerValue(h)
		if value == "" && h.OmitEmpty {
			continue
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(h.Label+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(9).Add(text.New(nonEmpty(value, "-"), props.Text{
				Size: 8, Top: 1,
			})),
		))
	}
	return rows
}

func (f *filler) headerValue(h template.HeaderField) string {
	if h.XPath != "" {
		v, _ := f.src.Lookup(h.XPath)
		return strings.TrimSpace(v)
	}
	v, ok := f.params[h.Param]
	if !ok || v == nil {
		return ""
	}
	return f.formatParam(v)
}

func (f *filler) formatParam(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.Format("02/01/2006 15:04:05")
	case json.Number:
		if d, err := decimal.NewFromString(val.String()); err == nil {
			return f.loc.FormatNumber(d, money.Places(d))
		}
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}

func (f *filler) tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(f.layout.Columns))
	for _, c := range f.layout.Columns {
		cols = append(cols, col.New(c.Width).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignment(c.Align),
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

// detailRows consumes the data source, one table row per record
func (f *filler) detailRows() []core.Row {
	f.values = make(map[int][]decimal.Decimal)
	var rows []core.Row
	for f.src.Next() {
		f.count++
		cols := make([]core.Col, 0, len(f.layout.Columns))
		for i, c := range f.layout.Columns {
			raw, _ := f.src.Field(c.Field)
			cols = append(cols, col.New(c.Width).Add(text.New(
				f.cell(i, c, strings.TrimSpace(raw)),
				props.Text{Size: 8, Align: alignment(c.Align), Top: 1, Left: 1, Right: 1},
			)))
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

// cell formats a raw value and accumulates totals.
// Numeric values that fail to parse are printed as-is.
func (f *filler) cell(i int, c template.Column, raw string) string {
	if !c.Numeric() || raw == "" {
		return raw
	}
	d, err := money.FromString(raw)
	if err != nil {
		return raw
	}
	if c.Total {
		f.values[i] = append(f.values[i], d)
	}
	return f.formatValue(c, d)
}

func (f *filler) formatValue(c template.Column, d decimal.Decimal) string {
	if c.Kind == template.KindAmount {
		return f.loc.FormatNumber(d, money.AmountPlaces(d))
	}
	return f.loc.FormatNumber(d, money.Places(d))
}

func (f *filler) totalsRow() core.Row {
	cols := make([]core.Col, 0, len(f.layout.Columns))
	labelled := false
	for i, c := range f.layout.Columns {
		content := ""
		style := props.Text{Style: fontstyle.Bold, Size: 9, Align: alignment(c.Align), Top: 1, Left: 1, Right: 1}
		switch {
		case c.Total:
			content = f.formatValue(c, f.total(i, c))
		case !labelled:
			content = "TOTAL"
			style.Align = align.Left
			labelled = true
		}
		cols = append(cols, col.New(c.Width).Add(text.New(content, style)))
	}
	return row.New(7).Add(cols...)
}

// total sums a column. Amount totals in guaraníes are rounded to whole units.
func (f *filler) total(i int, c template.Column) decimal.Decimal {
	sum := money.Sum(f.values[i])
	if c.Kind == template.KindAmount && f.inGuaranies() {
		return money.RoundPYG(sum)
	}
	return sum
}

// inGuaranies reports whether the document is issued in PYG, the default
// when no currency is given
func (f *filler) inGuaranies() bool {
	currency, ok := f.src.Lookup(CurrencyPath)
	currency = strings.TrimSpace(currency)
	return !ok || currency == "" || strings.EqualFold(currency, "PYG")
}

func (f *filler) footerRows() []core.Row {
	var rows []core.Row

	if f.layout.ShowParameters && len(f.params) > 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Parámetros", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
		)))
		for _, l := range strings.Split(params.Encode(f.params), "\n") {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(l, props.Text{Size: 7, Color: colorGray}),
			)))
		}
	}

	if f.layout.QR != "" {
		if data, ok := f.src.Lookup(f.layout.QR); ok && strings.TrimSpace(data) != "" {
			rows = append(rows, row.New(3))
			rows = append(rows, row.New(40).Add(
				col.New(3).Add(code.NewQr(strings.TrimSpace(data), props.Rect{Percent: 95, Center: true})),
				col.New(9).Add(text.New(f.layout.Footer, props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				})),
			))
			return rows
		}
	}

	if f.layout.Footer != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(f.layout.Footer, props.Text{Size: 7, Top: 3, Color: colorGray}),
		)))
	}
	return rows
}

func alignment(s string) align.Type {
	switch s {
	case template.AlignCenter:
		return align.Center
	case template.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
