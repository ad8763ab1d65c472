package xml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/rezonia/kude/internal/model"
)

// SIFEN element names
const (
	ElementRoot            = "rDE"
	ElementDocument        = "DE"
	ElementTypeCode        = "iTiDE"
	ElementTypeDescription = "dDesTiDE"
	ElementTaxStamp        = "dNumTim"
	ElementEstablishment   = "dEst"
	ElementPointOfSale     = "dPunExp"
	ElementNumber          = "dNumDoc"
	ElementSeries          = "dSerieNum"
)

// Classifier extracts the document type and identifying fields
type Classifier struct {
	parser TreeParser
}

// ClassifierOption configures a Classifier
type ClassifierOption func(*Classifier)

// WithTreeParser overrides the tree parser
func WithTreeParser(p TreeParser) ClassifierOption {
	return func(c *Classifier) {
		c.parser = p
	}
}

// NewClassifier creates a classifier backed by etree unless overridden
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{parser: NewEtreeParser()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassifyInput loads a path or literal document and classifies it
func (c *Classifier) ClassifyInput(input string) (*model.InvoiceMetadata, error) {
	data, err := LoadInput(input)
	if err != nil {
		return nil, err
	}
	return c.Classify(data)
}

// Classify parses data and extracts InvoiceMetadata
func (c *Classifier) Classify(data []byte) (*model.InvoiceMetadata, error) {
	doc, err := c.parser.Parse(data)
	if err != nil {
		return nil, err
	}

	root := doc.FindElement("//" + ElementRoot)
	if root == nil {
		return nil, model.NewStructureError(ElementRoot, "")
	}
	de := root.FindElement(".//" + ElementDocument)
	if de == nil {
		return nil, model.NewStructureError(ElementDocument, ElementRoot)
	}

	rawCode, err := requiredText(de, ElementTypeCode)
	if err != nil {
		return nil, err
	}
	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return nil, model.NewParseError(ElementTypeCode, rawCode, "document type is not an integer", err)
	}

	meta := &model.InvoiceMetadata{DocumentTypeCode: code}

	fields := []struct {
		element string
		dst     *string
	}{
		{ElementTypeDescription, &meta.DocumentTypeDescription},
		{ElementTaxStamp, &meta.TaxStampNumber},
		{ElementEstablishment, &meta.Establishment},
		{ElementPointOfSale, &meta.PointOfSale},
		{ElementNumber, &meta.DocumentNumber},
	}
	for _, f := range fields {
		if *f.dst, err = requiredText(de, f.element); err != nil {
			return nil, err
		}
	}

	// An empty series node counts as absent.
	if el := de.FindElement(".//" + ElementSeries); el != nil {
		if s := strings.TrimSpace(textContent(el)); s != "" {
			meta.Series = &s
		}
	}

	return meta, nil
}

func requiredText(parent *etree.Element, name string) (string, error) {
	el := parent.FindElement(".//" + name)
	if el == nil {
		return "", model.NewStructureError(name, parent.Tag)
	}
	return strings.TrimSpace(textContent(el)), nil
}

// textContent concatenates all character data below el, skipping comments
// and processing instructions
func textContent(el *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.Child {
			switch c := child.(type) {
			case *etree.CharData:
				b.WriteString(c.Data)
			case *etree.Element:
				walk(c)
			}
		}
	}
	walk(el)
	return b.String()
}
