package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid.yaml", "empty.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			require.NoError(t, err)
			assert.True(t, result.Valid, "issues: %v", result.Issues)
		})
	}
}

func TestValidateFile_Invalid(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-unknown-field.yaml", "additionalProperties"},
		{"invalid-requires-type.yaml", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			require.NoError(t, err)
			require.False(t, result.Valid)

			var keywords []string
			for _, issue := range result.Issues {
				keywords = append(keywords, issue.Keyword)
				assert.NotEmpty(t, issue.Message, "issue %+v", issue)
			}
			assert.Contains(t, keywords, tt.keyword)
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	assert.Error(t, err)
}
