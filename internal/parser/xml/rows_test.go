package xml_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlparser "github.com/rezonia/kude/internal/parser/xml"
)

func TestNewLineItemSource(t *testing.T) {
	data, err := os.ReadFile(testdataPath("factura.xml"))
	require.NoError(t, err)

	src, err := xmlparser.NewLineItemSource(data)
	require.NoError(t, err)
	require.Equal(t, 2, src.Len())

	require.True(t, src.Next())
	code, ok := src.Field("dCodInt")
	require.True(t, ok)
	assert.Equal(t, "P-001", code)

	_, ok = src.Field("dNoSuchField")
	assert.False(t, ok)

	require.True(t, src.Next())
	price, ok := src.Field("gValorItem/dPUniProSer")
	require.True(t, ok)
	assert.Equal(t, "12000", price)
}

func TestRowSource_Lookup(t *testing.T) {
	data, err := os.ReadFile(testdataPath("factura.xml"))
	require.NoError(t, err)

	src, err := xmlparser.NewLineItemSource(data)
	require.NoError(t, err)

	name, ok := src.Lookup("/rDE/DE/gDatGralOpe/gEmis/dNomEmi")
	require.True(t, ok)
	assert.Equal(t, "Comercial Asunción S.A.", name)

	_, ok = src.Lookup("/rDE/DE/gNothing")
	assert.False(t, ok)
}

func TestNewRowSource_NoItems(t *testing.T) {
	src, err := xmlparser.NewLineItemSource([]byte(minimalInvoice))
	require.NoError(t, err)
	assert.Equal(t, 0, src.Len())
	assert.False(t, src.Next())
}

func TestNewRowSource_BadSelector(t *testing.T) {
	_, err := xmlparser.NewRowSource([]byte(minimalInvoice), "/rDE[")
	require.Error(t, err)
}

func TestNewRowSource_Malformed(t *testing.T) {
	_, err := xmlparser.NewLineItemSource([]byte(`<?xml version="1.0"?><rDE><DE broken></DE></rDE>`))
	require.Error(t, err)
}

func TestRowSource_Cursor(t *testing.T) {
	data, err := os.ReadFile(testdataPath("factura.xml"))
	require.NoError(t, err)

	src, err := xmlparser.NewLineItemSource(data)
	require.NoError(t, err)

	_, ok := src.Field("dCodInt")
	assert.False(t, ok, "no current row before Next")

	var codes []string
	for src.Next() {
		code, _ := src.Field("dCodInt")
		codes = append(codes, code)
	}
	assert.Equal(t, []string{"P-001", "P-002"}, codes)
	assert.False(t, src.Next())

	_, ok = src.Field("dDesProSer")
	assert.False(t, ok, "no current row after the last one")
}
