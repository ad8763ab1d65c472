package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/kude/internal/locale"
	"github.com/rezonia/kude/internal/template"
)

type sliceSource struct {
	rows []map[string]string
	doc  map[string]string
	pos  int
}

func (s *sliceSource) Next() bool {
	s.pos++
	return s.pos <= len(s.rows)
}

func (s *sliceSource) Field(expr string) (string, bool) {
	v, ok := s.rows[s.pos-1][expr]
	return v, ok
}

func (s *sliceSource) Lookup(expr string) (string, bool) {
	v, ok := s.doc[expr]
	return v, ok
}

func testLayout(t *testing.T) *template.Layout {
	t.Helper()
	layout, err := template.ParseLayout([]byte(`
header:
  - label: Emisor
    xpath: /rDE/DE/gDatGralOpe/gEmis/dNomEmi
  - label: Copia
    param: COPIA
columns:
  - label: Descripción
    field: dDesProSer
    width: 6
  - label: Cant.
    field: dCantProSer
    width: 2
    kind: number
  - label: Total
    field: dTotBruOpeItem
    width: 4
    kind: amount
    total: true
`))
	require.NoError(t, err)
	return layout
}

func TestFiller_DetailRowsAccumulatesTotals(t *testing.T) {
	src := &sliceSource{rows: []map[string]string{
		{"dDesProSer": "Yerba", "dCantProSer": "2", "dTotBruOpeItem": "50000"},
		{"dDesProSer": "Chipa", "dCantProSer": "1.5", "dTotBruOpeItem": "18000"},
		{"dDesProSer": "Regalo", "dCantProSer": "1", "dTotBruOpeItem": "n/a"},
	}}
	f := &filler{layout: testLayout(t), src: src, loc: locale.Paraguay}

	rows := f.detailRows()
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, f.count)
	assert.Equal(t, "68.000", f.formatValue(f.layout.Columns[2], f.total(2, f.layout.Columns[2])))
	assert.Len(t, f.values[2], 2)
}

func TestFiller_TotalRoundsGuaranies(t *testing.T) {
	rows := []map[string]string{
		{"dTotBruOpeItem": "100.4"},
		{"dTotBruOpeItem": "200.3"},
	}

	tests := []struct {
		name     string
		currency map[string]string
		want     string
	}{
		{"no currency", nil, "301"},
		{"guaranies", map[string]string{CurrencyPath: "PYG"}, "301"},
		{"dollars", map[string]string{CurrencyPath: "USD"}, "300,70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &filler{
				layout: testLayout(t),
				src:    &sliceSource{rows: rows, doc: tt.currency},
				loc:    locale.Paraguay,
			}
			f.detailRows()

			col := f.layout.Columns[2]
			assert.Equal(t, tt.want, f.formatValue(col, f.total(2, col)))
		})
	}
}

func TestFiller_HeaderRowsOmitEmpty(t *testing.T) {
	layout, err := template.ParseLayout([]byte(`
header:
  - label: Número
    xpath: /rDE/DE/gTimb/dNumDoc
  - label: Serie
    xpath: /rDE/DE/gTimb/dSerieNum
    omit_empty: true
  - label: Cliente
    xpath: /rDE/DE/gDatGralOpe/gDatRec/dNomRec
columns:
  - label: Descripción
    field: dDesProSer
    width: 12
`))
	require.NoError(t, err)
	require.True(t, layout.Header[1].OmitEmpty)

	without := &filler{layout: layout, src: &sliceSource{doc: map[string]string{
		"/rDE/DE/gTimb/dNumDoc": "0000001",
	}}, loc: locale.Paraguay}
	assert.Len(t, without.headerRows(), 2, "absent series is skipped, empty client still printed")

	with := &filler{layout: layout, src: &sliceSource{doc: map[string]string{
		"/rDE/DE/gTimb/dNumDoc":    "0000001",
		"/rDE/DE/gTimb/dSerieNum": "A",
	}}, loc: locale.Paraguay}
	assert.Len(t, with.headerRows(), 3)
}

func TestFiller_Cell(t *testing.T) {
	f := &filler{layout: testLayout(t), loc: locale.Paraguay}
	f.values = make(map[int][]decimal.Decimal)

	cols := f.layout.Columns
	assert.Equal(t, "Yerba", f.cell(0, cols[0], "Yerba"))
	assert.Equal(t, "1,5", f.cell(1, cols[1], "1.5"))
	assert.Equal(t, "1.250.000", f.cell(2, cols[2], "1250000"))
	assert.Equal(t, "12,50", f.cell(2, cols[2], "12.5"))
	assert.Equal(t, "abc", f.cell(2, cols[2], "abc"))
	assert.Len(t, f.values[2], 2)
}

func TestFiller_HeaderValue(t *testing.T) {
	f := &filler{
		layout: testLayout(t),
		params: map[string]any{"COPIA": "ORIGINAL", locale.ParameterKey: locale.Paraguay},
		src:    &sliceSource{doc: map[string]string{"/rDE/DE/gDatGralOpe/gEmis/dNomEmi": " Comercial "}},
		loc:    locale.Paraguay,
	}

	assert.Equal(t, "Comercial", f.headerValue(f.layout.Header[0]))
	assert.Equal(t, "ORIGINAL", f.headerValue(f.layout.Header[1]))
	assert.Equal(t, "", f.headerValue(template.HeaderField{Param: "MISSING"}))
	assert.Equal(t, "es_PY", f.formatParam(locale.Paraguay))
}
