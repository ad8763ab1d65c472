package kude

import (
	"github.com/rezonia/kude/internal/model"
	"github.com/rezonia/kude/internal/pdfcheck"
	"github.com/rezonia/kude/internal/render"
)

// Argument names used in ArgumentError
const (
	ArgXMLInput    = "xmlInput"
	ArgTemplateDir = "templateDirPrefix"
	ArgOutputDir   = "outputDirPrefix"
)

// Request is one generation run.
// TemplateDir and OutputDir are prefixes concatenated as-is with file names,
// so directories must carry their trailing separator.
type Request struct {
	XMLInput       string
	TemplateDir    string
	OutputDir      string
	ParametersJSON string
}

// Validate checks the arguments needed before any stage runs
func (r Request) Validate() error {
	if r.XMLInput == "" {
		return model.NewArgumentError(ArgXMLInput, "must indicate the XML document to print")
	}
	if r.TemplateDir == "" {
		return model.NewArgumentError(ArgTemplateDir, "must indicate source path of template files")
	}
	if r.OutputDir == "" {
		return model.NewArgumentError(ArgOutputDir, "must indicate destination path for PDF generation")
	}
	return nil
}

// Result reports what a run produced
type Result struct {
	Metadata   *model.InvoiceMetadata `json:"metadata"`
	Template   string                 `json:"template"`
	Parameters map[string]any         `json:"-"`
	Rows       int                    `json:"rows"`
	OutputPath string                 `json:"output_path,omitempty"`
	Exported   bool                   `json:"exported"`
	Check      *pdfcheck.Result       `json:"check,omitempty"`

	// Err holds a render or export failure swallowed in tolerant mode
	Err error `json:"-"`

	report *render.FilledReport
}

// PDF returns the rendered bytes, nil if rendering failed
func (r *Result) PDF() []byte {
	if r.report == nil {
		return nil
	}
	return r.report.Bytes()
}
