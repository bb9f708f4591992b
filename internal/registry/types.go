package registry

import (
	"fmt"
	"strings"

	"github.com/extwizard/extwizard/internal/manifest"
)

// Category is the top-level grouping of templates.
type Category string

const (
	CategoryExtension Category = "extension"
	CategoryModule    Category = "module"
)

// DefaultKey is the substitution key used when none was set for a kind.
const DefaultKey = "TemplateKey"

// DefaultKind is the extension kind used when none is requested.
const DefaultKind = "default"

// knownCategories are the recognized categories in discovery order.
var knownCategories = []Category{
	CategoryExtension,
	CategoryModule,
}

// Categories returns the recognized categories.
func Categories() []Category {
	return append([]Category(nil), knownCategories...)
}

// DirName returns the directory name holding templates of this category
// ("extensions", "modules").
func (c Category) DirName() string {
	return string(c) + "s"
}

// ParseCategory parses a category name case-insensitively. Both the singular
// and the plural (directory) spelling are accepted.
func ParseCategory(s string) (Category, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, c := range knownCategories {
		if lower == string(c) || lower == c.DirName() {
			return c, nil
		}
	}
	return "", fmt.Errorf("'%s' is not a recognized template category", s)
}

// categoryNames returns the plural names, for messages.
func categoryNames() string {
	names := make([]string, len(knownCategories))
	for i, c := range knownCategories {
		names[i] = c.DirName()
	}
	return strings.Join(names, ", ")
}

// Entry is a resolved template.
type Entry struct {
	Category Category
	Kind     string // lowercase
	Root     string // template root directory
	Key      string // substitution key

	// Manifest is the optional template.yaml descriptor, nil when absent or
	// unreadable. ManifestWarnings explains why a present descriptor was
	// rejected or flagged.
	Manifest         *manifest.TemplateManifest
	ManifestWarnings []string
}

// Description returns the manifest description, or "" without one.
func (e Entry) Description() string {
	if e.Manifest == nil {
		return ""
	}
	return e.Manifest.Description
}
