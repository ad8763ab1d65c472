// Package render fills print templates with document rows and exports
// the result as PDF.
package render

import (
	"context"
)

// DataSource is a forward cursor over report rows.
// Lookup evaluates absolute paths against the whole document.
type DataSource interface {
	Next() bool
	Field(expr string) (string, bool)
	Lookup(expr string) (string, bool)
}

// FilledReport is a rendered report held in memory
type FilledReport struct {
	Template string
	Rows     int
	pdf      []byte
	save     func(path string) error
}

// Bytes returns the PDF content
func (r *FilledReport) Bytes() []byte {
	return r.pdf
}

// ReportRenderer fills a template and exports the filled report
type ReportRenderer interface {
	Fill(ctx context.Context, templatePath string, params map[string]any, src DataSource) (*FilledReport, error)
	ExportPDF(ctx context.Context, report *FilledReport, path string) error
}
