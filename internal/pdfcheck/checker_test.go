package pdfcheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlparser "github.com/rezonia/kude/internal/parser/xml"
	"github.com/rezonia/kude/internal/pdfcheck"
	"github.com/rezonia/kude/internal/render"
)

func renderSample(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "parser", "xml", "testdata", "factura.xml"))
	require.NoError(t, err)
	src, err := xmlparser.NewLineItemSource(data)
	require.NoError(t, err)

	report, err := render.NewMarotoRenderer().Fill(context.Background(),
		filepath.Join("..", "..", "templates", "Factura.yaml"), map[string]any{}, src)
	require.NoError(t, err)
	return report.Bytes()
}

func TestChecker_CheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Factura_1-001-001-0000001.pdf")
	require.NoError(t, os.WriteFile(path, renderSample(t), 0o644))

	result, err := pdfcheck.NewChecker().CheckFile(path)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, path, result.Path)
	assert.Positive(t, result.Size)
	assert.Empty(t, result.Errors)
}

func TestChecker_CheckBytes_NotPDF(t *testing.T) {
	result, err := pdfcheck.NewChecker().CheckBytes([]byte("<?xml version=\"1.0\"?><rDE/>"))
	require.Error(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "not a PDF file")
}

func TestChecker_CheckBytes_Truncated(t *testing.T) {
	pdf := renderSample(t)
	result, err := pdfcheck.NewChecker().CheckBytes(pdf[:len(pdf)/3])
	require.Error(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestChecker_CheckFile_Missing(t *testing.T) {
	result, err := pdfcheck.NewChecker().CheckFile(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.False(t, result.Valid)
}
