package model_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/kude/internal/model"
)

func TestStructureError(t *testing.T) {
	err := model.NewStructureError("dNumTim", "DE")
	assert.Equal(t, "missing required element <dNumTim> in <DE>", err.Error())

	err = model.NewStructureError("rDE", "")
	assert.Equal(t, "missing required element <rDE>", err.Error())
}

func TestParseError_Unwrap(t *testing.T) {
	err := model.NewParseError("iTiDE", "x", "not an integer", io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), `iTiDE: not an integer (value="x")`)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestTemplateNotFoundError(t *testing.T) {
	err := model.NewTemplateNotFoundError("/tpl/Factura.yaml", "")
	assert.Equal(t, "template /tpl/Factura.yaml not found", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, model.ExitOK},
		{"argument", model.NewArgumentError("templateDirPrefix", "missing"), model.ExitFatal},
		{"structure", model.NewStructureError("DE", "rDE"), model.ExitFatal},
		{"template", model.NewTemplateNotFoundError("/x", ""), model.ExitFatal},
		{"render", model.NewRenderError("Factura.yaml", "boom", nil), model.ExitExportFailed},
		{"wrapped export", fmt.Errorf("run: %w", model.NewExportError("/out.pdf", "write", nil)), model.ExitExportFailed},
		{"plain", errors.New("other"), model.ExitFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ExitCode(tt.err))
		})
	}
}

func TestIsExportFailure(t *testing.T) {
	var exportErr *model.ExportError
	err := fmt.Errorf("wrap: %w", model.NewExportError("/out.pdf", "verify", nil))
	require.ErrorAs(t, err, &exportErr)
	assert.True(t, model.IsExportFailure(err))
	assert.False(t, model.IsExportFailure(model.NewParameterDecodeError("{", nil)))
}
