package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/output"
)

// ListSources returns the recognized files under templateRoot as paths
// relative to it, in lexical walk order. A symlinked templateRoot is followed.
func ListSources(templateRoot string) ([]string, error) {
	templateRoot, err := resolveRoot(templateRoot)
	if err != nil {
		return nil, err
	}

	var sources []string

	err = filepath.WalkDir(templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSourceFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(templateRoot, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateRoot, err)
	}

	return sources, nil
}

// Instantiate copies every recognized file of templateRoot into
// destinationRoot. Each occurrence of key in the relative path is replaced by
// name; in the content, key is replaced by name and then the upper-case key
// by the upper-case name. Destination files are written fresh, never merged.
// It returns the written paths.
func Instantiate(templateRoot, destinationRoot, key, name string) ([]string, error) {
	if key == "" {
		return nil, werrors.NewInvalidArgumentError("substitution key must not be empty", "")
	}

	templateRoot, err := resolveRoot(templateRoot)
	if err != nil {
		return nil, err
	}

	sources, err := ListSources(templateRoot)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(sources))
	for _, rel := range sources {
		outFile := filepath.Join(destinationRoot, strings.ReplaceAll(rel, key, name))
		output.Info("creating", "file", outFile)

		if err := copyAndReplace(filepath.Join(templateRoot, rel), outFile, key, name); err != nil {
			return written, err
		}
		written = append(written, outFile)
	}

	return written, nil
}

// resolveRoot follows symlinks in root. WalkDir does not descend into a
// symlinked root.
func resolveRoot(root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("resolving template %s: %w", root, err)
	}
	return resolved, nil
}

// copyAndReplace writes src to dst with the key substitutions applied,
// preserving permissions.
func copyAndReplace(src, dst, key, name string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading template file %s: %w", src, err)
	}

	contents, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading template file %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(dst), err)
	}

	if err := os.WriteFile(dst, Substitute(contents, key, name), srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	return nil
}

// Substitute applies the two-pass key replacement to contents.
func Substitute(contents []byte, key, name string) []byte {
	contents = bytes.ReplaceAll(contents, []byte(key), []byte(name))
	return bytes.ReplaceAll(contents, []byte(strings.ToUpper(key)), []byte(strings.ToUpper(name)))
}
