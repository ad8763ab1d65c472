package xml

import (
	"github.com/beevik/etree"

	"github.com/rezonia/kude/internal/model"
)

// TreeParser parses raw XML into a navigable tree
type TreeParser interface {
	Parse(data []byte) (*etree.Document, error)
}

// EtreeParser is the default TreeParser
type EtreeParser struct{}

// NewEtreeParser creates a new etree-backed parser
func NewEtreeParser() *EtreeParser {
	return &EtreeParser{}
}

// Parse reads data into an etree document
func (p *EtreeParser) Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, model.NewParseError("xml", "", "failed to parse XML", err)
	}
	if doc.Root() == nil {
		return nil, model.NewParseError("xml", "", "document has no root element", nil)
	}
	return doc, nil
}
