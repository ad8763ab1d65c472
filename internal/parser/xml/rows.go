package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"gopkg.in/xmlpath.v2"
)

// LineItemSelector selects the repeating item rows of a SIFEN document
const LineItemSelector = "/rDE/DE/gDtipDE/gCamItem"

// RowSource presents a subtree of the document as tabular rows.
// It is a forward cursor: call Next before reading the first row.
type RowSource struct {
	root  *xmlpath.Node
	rows  []*xmlpath.Node
	pos   int
	paths map[string]*xmlpath.Path
}

// NewRowSource parses data and selects the rows matched by selector
func NewRowSource(data []byte, selector string) (*RowSource, error) {
	path, err := compile(selector)
	if err != nil {
		return nil, err
	}

	d := xml.NewDecoder(bytes.NewReader(data))
	d.CharsetReader = charsetReader
	root, err := xmlpath.ParseDecoder(d)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	src := &RowSource{root: root, pos: -1, paths: make(map[string]*xmlpath.Path)}
	iter := path.Iter(root)
	for iter.Next() {
		src.rows = append(src.rows, iter.Node())
	}
	return src, nil
}

// NewLineItemSource selects the document's line items
func NewLineItemSource(data []byte) (*RowSource, error) {
	return NewRowSource(data, LineItemSelector)
}

// Len returns the number of rows
func (s *RowSource) Len() int {
	return len(s.rows)
}

// Next advances the cursor and reports whether a row is available
func (s *RowSource) Next() bool {
	if s.pos+1 >= len(s.rows) {
		s.pos = len(s.rows)
		return false
	}
	s.pos++
	return true
}

// Field evaluates expr relative to the current row.
// Missing fields return "" and false.
func (s *RowSource) Field(expr string) (string, bool) {
	if s.pos < 0 || s.pos >= len(s.rows) {
		return "", false
	}
	return s.eval(expr, s.rows[s.pos])
}

// Lookup evaluates an absolute path against the whole document
func (s *RowSource) Lookup(expr string) (string, bool) {
	return s.eval(expr, s.root)
}

func (s *RowSource) eval(expr string, node *xmlpath.Node) (string, bool) {
	path, ok := s.paths[expr]
	if !ok {
		var err error
		if path, err = compile(expr); err != nil {
			return "", false
		}
		s.paths[expr] = path
	}
	return path.String(node)
}

func compile(expr string) (*xmlpath.Path, error) {
	path, err := xmlpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath %q: %w", expr, err)
	}
	return path, nil
}
