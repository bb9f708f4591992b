package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "extwizard", CLIName())
	assert.Equal(t, ".extwizard", HomeDir())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "EXTWIZARD_VERBOSE", EnvVar("verbose"))
}
