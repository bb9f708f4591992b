package wizard

import (
	"testing"

	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtensionArg(t *testing.T) {
	tests := []struct {
		arg  string
		want Spec
	}{
		{"MyExt", Spec{Name: "MyExt"}},
		{"superbuild:MyExt", Spec{Kind: "superbuild", Name: "MyExt"}},
	}
	for _, tt := range tests {
		got, err := ParseExtensionArg(tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "a:b:c", ":MyExt", "kind:"} {
		_, err := ParseExtensionArg(bad)
		assert.ErrorIs(t, err, werrors.ErrInvalidArgument, bad)
	}
}

func TestParseModuleArg(t *testing.T) {
	got, err := ParseModuleArg("cli:Foo")
	require.NoError(t, err)
	assert.Equal(t, Spec{Kind: "cli", Name: "Foo"}, got)

	for _, bad := range []string{"Foo", "", "a:b:c", ":Foo", "cli:"} {
		_, err := ParseModuleArg(bad)
		assert.ErrorIs(t, err, werrors.ErrInvalidArgument, bad)
	}
}
