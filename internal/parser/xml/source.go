package xml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DeclarationPrefix marks an input as literal XML rather than a file path
const DeclarationPrefix = "<?xml"

// IsLiteral reports whether input is an XML document rather than a path
func IsLiteral(input string) bool {
	return strings.HasPrefix(input, DeclarationPrefix)
}

// LoadInput returns the XML bytes for input, which is either a literal
// document starting with the XML declaration or a path to a file.
// The file is closed before LoadInput returns.
func LoadInput(input string) ([]byte, error) {
	if IsLiteral(input) {
		return []byte(input), nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML file: %w", err)
	}
	return data, nil
}

// charsetReader decodes the single-byte encodings SIFEN documents are
// exported with. encoding/xml handles UTF-8 itself.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	var cm *charmap.Charmap
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		cm = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		cm = charmap.Windows1252
	case "ibm850", "cp850":
		cm = charmap.CodePage850
	default:
		return nil, fmt.Errorf("unsupported charset: %s", label)
	}
	return transform.NewReader(input, cm.NewDecoder()), nil
}
