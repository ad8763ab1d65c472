package render

import (
	"context"
	"os"
	"path/filepath"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rezonia/kude/internal/locale"
	"github.com/rezonia/kude/internal/model"
	"github.com/rezonia/kude/internal/template"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 56, Blue: 147}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoRenderer implements ReportRenderer with maroto v2
type MarotoRenderer struct {
	author string
}

// Option configures a MarotoRenderer
type Option func(*MarotoRenderer)

// WithAuthor sets the PDF author metadata
func WithAuthor(author string) Option {
	return func(r *MarotoRenderer) {
		r.author = author
	}
}

// NewMarotoRenderer creates the default renderer
func NewMarotoRenderer(opts ...Option) *MarotoRenderer {
	r := &MarotoRenderer{author: "kude"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fill loads the layout at templatePath and renders every row of src
func (r *MarotoRenderer) Fill(ctx context.Context, templatePath string, parameters map[string]any, src DataSource) (*FilledReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewRenderError(templatePath, "cancelled", err)
	}

	layout, err := template.LoadLayout(templatePath)
	if err != nil {
		return nil, model.NewRenderError(templatePath, "invalid template", err)
	}

	loc := locale.FromParameters(parameters)
	f := &filler{layout: layout, params: parameters, src: src, loc: loc}

	m := maroto.New(r.config(layout))
	m.AddRows(f.titleRows()...)
	m.AddRows(f.headerRows()...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(f.tableHeaderRow())
	m.AddRows(f.detailRows()...)
	if layout.HasTotals() {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(f.totalsRow())
	}
	m.AddRows(f.footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, model.NewRenderError(templatePath, "generate document", err)
	}

	return &FilledReport{
		Template: templatePath,
		Rows:     f.count,
		pdf:      doc.GetBytes(),
		save:     doc.Save,
	}, nil
}

// ExportPDF writes the filled report to path, creating its directory
func (r *MarotoRenderer) ExportPDF(ctx context.Context, report *FilledReport, path string) error {
	if err := ctx.Err(); err != nil {
		return model.NewExportError(path, "cancelled", err)
	}
	if report == nil {
		return model.NewExportError(path, "no report to export", nil)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return model.NewExportError(path, "create output directory", err)
		}
	}

	var err error
	if report.save != nil {
		err = report.save(path)
	} else {
		err = os.WriteFile(path, report.pdf, 0o644)
	}
	if err != nil {
		return model.NewExportError(path, "write PDF", err)
	}
	return nil
}

func (r *MarotoRenderer) config(layout *template.Layout) *entity.Config {
	b := config.NewBuilder().
		WithPageSize(pageSize(layout.PageSize)).
		WithOrientation(pageOrientation(layout.Orientation)).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: layout.FontSize}).
		WithAuthor(r.author, true)
	if layout.Title != "" {
		b = b.WithTitle(layout.Title, true)
	}
	return b.Build()
}

func pageSize(s string) pagesize.Type {
	switch s {
	case "a5":
		return pagesize.A5
	case "letter":
		return pagesize.Letter
	case "legal":
		return pagesize.Legal
	default:
		return pagesize.A4
	}
}

func pageOrientation(s string) orientation.Type {
	if s == "landscape" {
		return orientation.Horizontal
	}
	return orientation.Vertical
}
