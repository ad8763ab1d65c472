package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/kude/internal/model"
	"github.com/rezonia/kude/internal/template"
)

func TestResolve_KnownCodes(t *testing.T) {
	expected := map[int]string{
		1: "Factura.yaml",
		2: "FacturaImportacion.yaml",
		3: "FacturaExportacion.yaml",
		4: "AutoFactura.yaml",
		5: "NotaCredito.yaml",
		6: "NotaDebito.yaml",
		7: "NotaRemision.yaml",
	}

	for code, file := range expected {
		sel := template.Resolve("/opt/kude/templates/", code)
		assert.True(t, sel.Known(), "code %d", code)
		assert.Equal(t, model.DocumentType(code), sel.Entry.Type)
		assert.Equal(t, "/opt/kude/templates/"+file, sel.Path)
	}
}

func TestResolve_UnknownCodeKeepsBarePrefix(t *testing.T) {
	dir := t.TempDir() + string(os.PathSeparator)

	for _, code := range []int{0, 8, -3, 100} {
		sel := template.Resolve(dir, code)
		assert.False(t, sel.Known())
		assert.Equal(t, model.DocumentTypeUnknown, sel.Entry.Type)
		assert.Equal(t, dir, sel.Path)

		err := sel.Validate()
		require.Error(t, err)
		var notFound *model.TemplateNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, dir, notFound.Path)
	}
}

func TestSelection_Validate(t *testing.T) {
	dir := t.TempDir()
	prefix := dir + string(os.PathSeparator)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Factura.yaml"), []byte("title: x\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "NotaDebito.yaml"), 0o755))

	assert.NoError(t, template.Resolve(prefix, 1).Validate())

	tests := []struct {
		name string
		code int
	}{
		{"missing file", 5},
		{"directory", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := template.Resolve(prefix, tt.code)
			err := sel.Validate()
			var notFound *model.TemplateNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, sel.Path, notFound.Path)
		})
	}
}

func TestList(t *testing.T) {
	list := template.List()
	require.Len(t, list, 7)
	assert.Equal(t, model.DocumentTypeInvoice, list[0].Type)
	assert.Equal(t, "NotaRemision.yaml", list[6].FileName())

	entry, ok := template.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "NotaCredito", entry.BaseName)
}
