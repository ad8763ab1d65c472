package xml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xmlparser "github.com/rezonia/kude/internal/parser/xml"
)

func TestIsLiteral(t *testing.T) {
	assert.True(t, xmlparser.IsLiteral(`<?xml version="1.0"?><rDE/>`))
	assert.False(t, xmlparser.IsLiteral("/data/invoice.xml"))
	assert.False(t, xmlparser.IsLiteral(" <?xml version=\"1.0\"?>"))
	assert.False(t, xmlparser.IsLiteral("<rDE/>"))
}

func TestLoadInput(t *testing.T) {
	literal := `<?xml version="1.0"?><rDE/>`
	data, err := xmlparser.LoadInput(literal)
	require.NoError(t, err)
	assert.Equal(t, literal, string(data))

	path := filepath.Join(t.TempDir(), "doc.xml")
	require.NoError(t, os.WriteFile(path, []byte(literal), 0o644))
	data, err = xmlparser.LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, literal, string(data))
}
