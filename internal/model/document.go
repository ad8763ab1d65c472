package model

import "fmt"

// DocumentType is the SIFEN document type code (iTiDE)
type DocumentType int

// Document types with a print template
const (
	DocumentTypeUnknown           DocumentType = 0
	DocumentTypeInvoice           DocumentType = 1
	DocumentTypeImportInvoice     DocumentType = 2
	DocumentTypeExportInvoice     DocumentType = 3
	DocumentTypeSelfBilledInvoice DocumentType = 4
	DocumentTypeCreditNote        DocumentType = 5
	DocumentTypeDebitNote         DocumentType = 6
	DocumentTypeDispatchNote      DocumentType = 7
)

// DocumentTypes lists every known type in code order
var DocumentTypes = []DocumentType{
	DocumentTypeInvoice,
	DocumentTypeImportInvoice,
	DocumentTypeExportInvoice,
	DocumentTypeSelfBilledInvoice,
	DocumentTypeCreditNote,
	DocumentTypeDebitNote,
	DocumentTypeDispatchNote,
}

// ParseDocumentType maps a raw code to a known type.
// Codes outside 1..7 yield DocumentTypeUnknown and false.
func ParseDocumentType(code int) (DocumentType, bool) {
	t := DocumentType(code)
	if t.IsKnown() {
		return t, true
	}
	return DocumentTypeUnknown, false
}

// IsKnown reports whether t has a print template
func (t DocumentType) IsKnown() bool {
	return t >= DocumentTypeInvoice && t <= DocumentTypeDispatchNote
}

func (t DocumentType) String() string {
	switch t {
	case DocumentTypeInvoice:
		return "invoice"
	case DocumentTypeImportInvoice:
		return "import-invoice"
	case DocumentTypeExportInvoice:
		return "export-invoice"
	case DocumentTypeSelfBilledInvoice:
		return "self-billed-invoice"
	case DocumentTypeCreditNote:
		return "credit-note"
	case DocumentTypeDebitNote:
		return "debit-note"
	case DocumentTypeDispatchNote:
		return "dispatch-note"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// InvoiceMetadata holds the identifying fields of an electronic document.
// It is built once per run from the XML tree and never modified.
type InvoiceMetadata struct {
	DocumentTypeCode        int     `json:"document_type_code"`
	DocumentTypeDescription string  `json:"document_type_description"`
	TaxStampNumber          string  `json:"tax_stamp_number"`
	Establishment           string  `json:"establishment"`
	PointOfSale             string  `json:"point_of_sale"`
	DocumentNumber          string  `json:"document_number"`
	Series                  *string `json:"series,omitempty"`
}

// DocumentType returns the typed code, DocumentTypeUnknown when out of range
func (m *InvoiceMetadata) DocumentType() DocumentType {
	t, _ := ParseDocumentType(m.DocumentTypeCode)
	return t
}

// HasSeries reports whether a series number was present
func (m *InvoiceMetadata) HasSeries() bool {
	return m.Series != nil
}

// FileName builds the export file name:
// <desc>_<stamp>-<establishment>-<point>-<number>[-<series>].pdf
func (m *InvoiceMetadata) FileName() string {
	name := m.DocumentTypeDescription + "_" + m.TaxStampNumber + "-" +
		m.Establishment + "-" + m.PointOfSale + "-" + m.DocumentNumber
	if m.Series != nil {
		name += "-" + *m.Series
	}
	return name + ".pdf"
}
