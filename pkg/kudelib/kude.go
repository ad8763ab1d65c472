// Package kudelib provides a public API for printing SIFEN electronic documents.
//
// Example usage:
//
//	gen := kudelib.NewDefaultGenerator()
//	path, err := gen.Generate(ctx, "factura.xml", "templates/", "out/", `{}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path)
package kudelib

import (
	"github.com/rezonia/kude/internal/model"
	"github.com/rezonia/kude/internal/template"
)

// Re-export core types for public API
type (
	InvoiceMetadata = model.InvoiceMetadata
	DocumentType    = model.DocumentType
	TemplateEntry   = template.Entry
)

// Re-export document types
const (
	DocumentTypeUnknown           = model.DocumentTypeUnknown
	DocumentTypeInvoice           = model.DocumentTypeInvoice
	DocumentTypeImportInvoice     = model.DocumentTypeImportInvoice
	DocumentTypeExportInvoice     = model.DocumentTypeExportInvoice
	DocumentTypeSelfBilledInvoice = model.DocumentTypeSelfBilledInvoice
	DocumentTypeCreditNote        = model.DocumentTypeCreditNote
	DocumentTypeDebitNote         = model.DocumentTypeDebitNote
	DocumentTypeDispatchNote      = model.DocumentTypeDispatchNote
)

// Re-export error types
type (
	ArgumentError         = model.ArgumentError
	StructureError        = model.StructureError
	ParseError            = model.ParseError
	ParameterDecodeError  = model.ParameterDecodeError
	TemplateNotFoundError = model.TemplateNotFoundError
	RenderError           = model.RenderError
	ExportError           = model.ExportError
)

// Templates lists the document type to template table
func Templates() []TemplateEntry {
	return template.List()
}

// ExitCode maps an error returned by this package to a process exit status
func ExitCode(err error) int {
	return model.ExitCode(err)
}
