package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	werrors "github.com/extwizard/extwizard/internal/errors"
)

// AddPathArg registers templates from a "[CATEGORY=]PATH" argument. Without a
// category, PATH is a base directory containing category directories.
func (r *Registry) AddPathArg(arg string) error {
	parts := strings.SplitN(arg, "=", 2)

	if len(parts) == 1 {
		if err := checkTemplateDir(arg); err != nil {
			return err
		}
		return r.RegisterCategoryTree(arg)
	}

	category, err := ParseCategory(parts[0])
	if err != nil {
		return werrors.NewInvalidArgumentError(err.Error(),
			"recognized categories: "+categoryNames())
	}

	path := parts[1]
	if err := checkTemplateDir(path); err != nil {
		return err
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("resolving template path %s: %w", path, err)
	}
	return r.RegisterCategoryPath(category, resolved)
}

// AddKeyArg sets a substitution key from a "TYPE=KEY" argument.
func (r *Registry) AddKeyArg(arg string) error {
	parts := strings.Split(arg, "=")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return werrors.NewInvalidArgumentError(
			fmt.Sprintf("template key '%s' malformatted: expected 'TYPE=KEY'", arg), "")
	}
	r.SetKey(parts[0], parts[1])
	return nil
}

func checkTemplateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return werrors.NewInvalidArgumentError(
			fmt.Sprintf("template path '%s' does not exist", path), "")
	}
	if !info.IsDir() {
		return werrors.NewInvalidArgumentError(
			fmt.Sprintf("template path '%s' is not a directory", path), "")
	}
	return nil
}
