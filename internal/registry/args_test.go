package registry

import (
	"os"
	"path/filepath"
	"testing"

	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPathArgBase(t *testing.T) {
	base := t.TempDir()
	makeTemplates(t, base, "modules", "cli")

	r := NewRegistry()
	require.NoError(t, r.AddPathArg(base))
	_, err := r.Resolve(CategoryModule, "cli")
	assert.NoError(t, err)
}

func TestAddPathArgWithCategory(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []string{"Qt", "plain"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, kind), 0755))
	}

	r := NewRegistry()
	require.NoError(t, r.AddPathArg("Modules="+dir))
	assertKinds(t, r, CategoryModule, "plain", "qt")
	assertKinds(t, r, CategoryExtension)
}

func TestAddPathArgShadowsBuiltin(t *testing.T) {
	builtin := t.TempDir()
	makeTemplates(t, builtin, "modules", "cli")
	user := t.TempDir()
	makeTemplates(t, user, "modules", "cli")

	r := NewRegistry()
	require.NoError(t, r.RegisterCategoryTree(builtin))
	require.NoError(t, r.AddPathArg(user))

	e, err := r.Resolve(CategoryModule, "cli")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(user, "modules", "cli"))
	require.NoError(t, err)
	assert.Equal(t, want, e.Root)
}

func TestAddPathArgErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name string
		arg  string
	}{
		{"missing path", filepath.Join(t.TempDir(), "missing")},
		{"not a directory", file},
		{"unknown category", "widgets=" + t.TempDir()},
		{"category with missing path", "modules=" + filepath.Join(t.TempDir(), "missing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().AddPathArg(tt.arg)
			assert.ErrorIs(t, err, werrors.ErrInvalidArgument)
		})
	}
}

func TestAddKeyArg(t *testing.T) {
	r := NewRegistry()
	r.Register(CategoryModule, "cli", "/m/cli")
	require.NoError(t, r.AddKeyArg("cli=CliKey"))

	e, err := r.Resolve(CategoryModule, "cli")
	require.NoError(t, err)
	assert.Equal(t, "CliKey", e.Key)

	for _, bad := range []string{"cli", "cli=a=b", "=Key", "cli="} {
		assert.ErrorIs(t, r.AddKeyArg(bad), werrors.ErrInvalidArgument, bad)
	}
}
