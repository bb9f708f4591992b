package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile(t *testing.T) {
	m, err := ParseFile(testPath("valid.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "default", m.Name)
	assert.Equal(t, ">= 1.0.0", m.Requires)
	assert.Equal(t, []string{"cmake", "extension"}, m.Tags)
}

func TestParseFile_Empty(t *testing.T) {
	m, err := ParseFile(testPath("empty.yaml"))
	require.NoError(t, err)
	assert.Empty(t, m.Name)
	assert.Empty(t, m.Description)
}

func TestParseFile_Errors(t *testing.T) {
	_, err := ParseFile(testPath("invalid-not-yaml.yaml"))
	assert.Error(t, err, "invalid YAML")

	_, err = ParseFile(testPath("nonexistent.yaml"))
	assert.Error(t, err, "missing file")
}
