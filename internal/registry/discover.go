package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RegisterCategoryTree scans the immediate subdirectories of basePath and
// registers the kinds found under any directory named after a category
// ("extensions", "modules", case-insensitive). A missing basePath is ignored.
func (r *Registry) RegisterCategoryTree(basePath string) error {
	if _, err := os.Stat(basePath); err != nil {
		return nil
	}

	basePath, err := filepath.EvalSymlinks(basePath)
	if err != nil {
		return fmt.Errorf("resolving template path %s: %w", basePath, err)
	}

	entries, err := os.ReadDir(basePath)
	if err != nil {
		return fmt.Errorf("reading template path %s: %w", basePath, err)
	}

	for _, entry := range entries {
		category, ok := categoryForDir(entry.Name())
		if !ok {
			continue
		}
		dir := filepath.Join(basePath, entry.Name())
		if !isDir(dir) {
			continue
		}
		if err := r.RegisterCategoryPath(category, dir); err != nil {
			return err
		}
	}

	return nil
}

// RegisterCategoryPath registers every immediate subdirectory of path as a
// kind of category.
func (r *Registry) RegisterCategoryPath(category Category, path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("reading %s templates in %s: %w", category, path, err)
	}

	for _, entry := range entries {
		root := filepath.Join(path, entry.Name())
		if isDir(root) {
			r.Register(category, entry.Name(), root)
		}
	}

	return nil
}

// categoryForDir maps a directory name to the category it holds.
func categoryForDir(name string) (Category, bool) {
	lower := strings.ToLower(name)
	for _, c := range knownCategories {
		if lower == c.DirName() {
			return c, true
		}
	}
	return "", false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
