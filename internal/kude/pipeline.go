// Package kude classifies a SIFEN document, picks its print template and
// renders the KuDE PDF.
package kude

import (
	"context"
	"errors"

	"github.com/rezonia/kude/internal/logging"
	"github.com/rezonia/kude/internal/model"
	"github.com/rezonia/kude/internal/params"
	xmlparser "github.com/rezonia/kude/internal/parser/xml"
	"github.com/rezonia/kude/internal/pdfcheck"
	"github.com/rezonia/kude/internal/render"
	"github.com/rezonia/kude/internal/template"
)

// Classifier extracts document metadata from raw XML
type Classifier interface {
	Classify(data []byte) (*model.InvoiceMetadata, error)
}

// OutputChecker validates an exported PDF
type OutputChecker interface {
	CheckFile(path string) (*pdfcheck.Result, error)
}

// Pipeline runs the stages of a generation in order: resolve, validate,
// merge parameters, render, export and optionally verify.
type Pipeline struct {
	classifier Classifier
	renderer   render.ReportRenderer
	checker    OutputChecker
	log        *logging.Logger
	tolerant   bool
}

// PipelineOption configures the pipeline
type PipelineOption func(*Pipeline)

// WithClassifier replaces the etree classifier
func WithClassifier(c Classifier) PipelineOption {
	return func(p *Pipeline) {
		p.classifier = c
	}
}

// WithRenderer replaces the maroto renderer
func WithRenderer(r render.ReportRenderer) PipelineOption {
	return func(p *Pipeline) {
		p.renderer = r
	}
}

// WithOutputChecker enables verification of the exported file
func WithOutputChecker(c OutputChecker) PipelineOption {
	return func(p *Pipeline) {
		p.checker = c
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithTolerateRenderErrors logs render and export failures instead of
// returning them
func WithTolerateRenderErrors(tolerant bool) PipelineOption {
	return func(p *Pipeline) {
		p.tolerant = tolerant
	}
}

// NewPipeline creates a pipeline with the default classifier and renderer
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		classifier: xmlparser.NewClassifier(),
		renderer:   render.NewMarotoRenderer(),
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run generates and exports the PDF for req.
// Argument, structure, parse and template errors are returned as is.
// Render and export errors are returned as RenderError or ExportError
// unless the pipeline is tolerant, in which case they are logged and
// kept in Result.Err.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, data, err := p.prepare(req)
	if err != nil {
		return nil, err
	}

	if err := p.fill(ctx, result, data); err != nil {
		return p.renderFailure(result, err)
	}

	result.OutputPath = req.OutputDir + result.Metadata.FileName()
	if err := p.export(ctx, result); err != nil {
		return p.renderFailure(result, err)
	}

	if p.checker != nil {
		if err := p.verify(result); err != nil {
			return p.renderFailure(result, err)
		}
	}

	p.log.Info().
		Str("output", result.OutputPath).
		Int("rows", result.Rows).
		Msg("document generated")
	return result, nil
}

// Render runs every stage except export and returns the PDF in memory
func (p *Pipeline) Render(ctx context.Context, req Request) (*Result, error) {
	if req.TemplateDir == "" {
		return nil, model.NewArgumentError(ArgTemplateDir, "must indicate source path of template files")
	}

	result, data, err := p.prepare(req)
	if err != nil {
		return nil, err
	}
	if err := p.fill(ctx, result, data); err != nil {
		return nil, err
	}
	return result, nil
}

// prepare loads the document and runs resolution, validation and
// parameter merge
func (p *Pipeline) prepare(req Request) (*Result, []byte, error) {
	data, err := xmlparser.LoadInput(req.XMLInput)
	if err != nil {
		return nil, nil, model.NewParseError("xml", "", "failed to load document", err)
	}

	meta, err := p.classifier.Classify(data)
	if err != nil {
		return nil, nil, err
	}
	p.log.Debug().
		Int("type", meta.DocumentTypeCode).
		Str("description", meta.DocumentTypeDescription).
		Str("number", meta.DocumentNumber).
		Msg("document classified")

	selection := template.Resolve(req.TemplateDir, meta.DocumentTypeCode)
	if !selection.Known() {
		p.log.Warn().Int("type", meta.DocumentTypeCode).Msg("no template mapped to document type")
	}
	if err := selection.Validate(); err != nil {
		return nil, nil, err
	}
	p.log.Debug().Str("template", selection.Path).Msg("template selected")

	parameters, err := params.Merge(req.ParametersJSON)
	if err != nil {
		var decodeErr *model.ParameterDecodeError
		if !errors.As(err, &decodeErr) {
			return nil, nil, err
		}
		p.log.Error().Err(err).Msg("continuing with default parameters")
	}

	return &Result{
		Metadata:   meta,
		Template:   selection.Path,
		Parameters: parameters,
	}, data, nil
}

func (p *Pipeline) fill(ctx context.Context, result *Result, data []byte) error {
	src, err := xmlparser.NewLineItemSource(data)
	if err != nil {
		return model.NewRenderError(result.Template, "failed to build row source", err)
	}

	report, err := p.renderer.Fill(ctx, result.Template, result.Parameters, src)
	if err != nil {
		return asRenderError(result.Template, err)
	}
	result.Rows = report.Rows
	result.report = report
	return nil
}

func (p *Pipeline) export(ctx context.Context, result *Result) error {
	if err := p.renderer.ExportPDF(ctx, result.report, result.OutputPath); err != nil {
		var exportErr *model.ExportError
		if errors.As(err, &exportErr) {
			return err
		}
		return model.NewExportError(result.OutputPath, "failed to write PDF", err)
	}
	result.Exported = true
	return nil
}

func (p *Pipeline) verify(result *Result) error {
	check, err := p.checker.CheckFile(result.OutputPath)
	result.Check = check
	if err != nil {
		return model.NewExportError(result.OutputPath, "exported PDF failed verification", err)
	}
	p.log.Debug().Int("pages", check.Pages).Int64("size", check.Size).Msg("output verified")
	return nil
}

func (p *Pipeline) renderFailure(result *Result, err error) (*Result, error) {
	p.log.Error().Err(err).Str("template", result.Template).Msg("failed to generate document")
	if p.tolerant {
		result.Err = err
		return result, nil
	}
	return result, err
}

func asRenderError(path string, err error) error {
	var renderErr *model.RenderError
	if errors.As(err, &renderErr) {
		return err
	}
	return model.NewRenderError(path, "failed to fill template", err)
}
