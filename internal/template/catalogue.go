// Package template maps document types to print templates and loads the
// YAML layouts the renderer fills.
package template

import (
	"fmt"
	"os"

	"github.com/rezonia/kude/internal/model"
)

// Extension is appended to every template base name
const Extension = ".yaml"

// Entry binds a document type to its template base name
type Entry struct {
	Type     model.DocumentType
	BaseName string
}

// FileName returns the template file name
func (e Entry) FileName() string {
	return e.BaseName + Extension
}

var entries = map[model.DocumentType]string{
	model.DocumentTypeInvoice:           "Factura",
	model.DocumentTypeImportInvoice:     "FacturaImportacion",
	model.DocumentTypeExportInvoice:     "FacturaExportacion",
	model.DocumentTypeSelfBilledInvoice: "AutoFactura",
	model.DocumentTypeCreditNote:        "NotaCredito",
	model.DocumentTypeDebitNote:         "NotaDebito",
	model.DocumentTypeDispatchNote:      "NotaRemision",
}

// Lookup returns the entry for a raw type code
func Lookup(code int) (Entry, bool) {
	t, ok := model.ParseDocumentType(code)
	if !ok {
		return Entry{Type: model.DocumentTypeUnknown}, false
	}
	return Entry{Type: t, BaseName: entries[t]}, true
}

// List returns every entry in code order
func List() []Entry {
	list := make([]Entry, 0, len(model.DocumentTypes))
	for _, t := range model.DocumentTypes {
		list = append(list, Entry{Type: t, BaseName: entries[t]})
	}
	return list
}

// Selection is the outcome of template resolution
type Selection struct {
	Code  int
	Entry Entry
	Path  string
}

// Known reports whether the code matched the table
func (s Selection) Known() bool {
	return s.Entry.Type.IsKnown()
}

// Resolve concatenates prefix with the template file for code.
// For an unknown code the path is the bare prefix.
func Resolve(prefix string, code int) Selection {
	entry, ok := Lookup(code)
	if !ok {
		return Selection{Code: code, Entry: entry, Path: prefix}
	}
	return Selection{Code: code, Entry: entry, Path: prefix + entry.FileName()}
}

// Validate checks that the selected template is an existing regular file
func (s Selection) Validate() error {
	if !s.Known() {
		return model.NewTemplateNotFoundError(s.Path, fmt.Sprintf("no template for document type %d", s.Code))
	}

	info, err := os.Stat(s.Path)
	switch {
	case err != nil && os.IsNotExist(err):
		return model.NewTemplateNotFoundError(s.Path, "")
	case err != nil:
		return model.NewTemplateNotFoundError(s.Path, err.Error())
	case !info.Mode().IsRegular():
		return model.NewTemplateNotFoundError(s.Path, "not a regular file")
	}
	return nil
}
