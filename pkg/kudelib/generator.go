package kudelib

import (
	"context"

	"github.com/rezonia/kude/internal/kude"
	"github.com/rezonia/kude/internal/logging"
	xmlparser "github.com/rezonia/kude/internal/parser/xml"
	"github.com/rezonia/kude/internal/pdfcheck"
	"github.com/rezonia/kude/internal/render"
)

// Options configures a Generator
type Options struct {
	// Author written into the PDF metadata
	Author string

	// VerifyOutput validates each exported PDF
	VerifyOutput bool

	// TolerateRenderErrors returns no error when rendering or export fails
	TolerateRenderErrors bool

	// LogLevel for diagnostics on stderr, "error" when empty
	LogLevel string
}

// DefaultOptions returns the options used by the command line tool
func DefaultOptions() Options {
	return Options{
		LogLevel: logging.DefaultLevel,
	}
}

// Generator renders KuDE documents
type Generator struct {
	pipeline   *kude.Pipeline
	classifier *xmlparser.Classifier
}

// NewGenerator creates a generator with the given options
func NewGenerator(opts Options) *Generator {
	var rendererOpts []render.Option
	if opts.Author != "" {
		rendererOpts = append(rendererOpts, render.WithAuthor(opts.Author))
	}

	classifier := xmlparser.NewClassifier()
	pipelineOpts := []kude.PipelineOption{
		kude.WithClassifier(classifier),
		kude.WithRenderer(render.NewMarotoRenderer(rendererOpts...)),
		kude.WithTolerateRenderErrors(opts.TolerateRenderErrors),
		kude.WithLogger(logging.New(logging.Config{Level: opts.LogLevel}).WithComponent("kudelib")),
	}
	if opts.VerifyOutput {
		pipelineOpts = append(pipelineOpts, kude.WithOutputChecker(pdfcheck.NewChecker()))
	}

	return &Generator{
		pipeline:   kude.NewPipeline(pipelineOpts...),
		classifier: classifier,
	}
}

// NewDefaultGenerator creates a generator with default options
func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultOptions())
}

// Generate writes the PDF for xmlInput and returns its path.
// xmlInput is a file path or an XML document starting with "<?xml".
func (g *Generator) Generate(ctx context.Context, xmlInput, templateDir, outputDir, parametersJSON string) (string, error) {
	result, err := g.pipeline.Run(ctx, kude.Request{
		XMLInput:       xmlInput,
		TemplateDir:    templateDir,
		OutputDir:      outputDir,
		ParametersJSON: parametersJSON,
	})
	if err != nil {
		return "", err
	}
	if result.Err != nil {
		return "", nil
	}
	return result.OutputPath, nil
}

// RenderBytes renders the PDF in memory without writing it
func (g *Generator) RenderBytes(ctx context.Context, xmlInput, templateDir, parametersJSON string) ([]byte, *InvoiceMetadata, error) {
	result, err := g.pipeline.Render(ctx, kude.Request{
		XMLInput:       xmlInput,
		TemplateDir:    templateDir,
		ParametersJSON: parametersJSON,
	})
	if err != nil {
		return nil, nil, err
	}
	return result.PDF(), result.Metadata, nil
}

// Classify returns the metadata of xmlInput without rendering
func (g *Generator) Classify(xmlInput string) (*InvoiceMetadata, error) {
	return g.classifier.ClassifyInput(xmlInput)
}
