package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/extwizard/extwizard/internal/branding"
	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/manifest"
	"github.com/extwizard/extwizard/internal/output"
)

// Registry maps (category, kind) to template roots, and kind to substitution
// keys. Later registrations of the same kind within a category win.
type Registry struct {
	paths map[Category]map[string]string
	keys  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{
		paths: make(map[Category]map[string]string),
		keys:  make(map[string]string),
	}
	for _, c := range knownCategories {
		r.paths[c] = make(map[string]string)
	}
	return r
}

// Register stores root as the template for kind within category, replacing
// any earlier registration. Category spellings accepted by ParseCategory are
// normalized; anything else is ignored.
func (r *Registry) Register(category Category, kind, root string) {
	c, err := ParseCategory(string(category))
	if err != nil {
		output.Debug("ignoring template with unknown category", "category", category, "kind", kind, "root", root)
		return
	}
	category = c
	kind = strings.ToLower(kind)
	if prev, ok := r.paths[category][kind]; ok && prev != root {
		output.Debug("template shadowed", "category", category, "kind", kind, "previous", prev, "root", root)
	}
	r.paths[category][kind] = root
}

// SetKey records an explicit substitution key for kind. Keys apply to the
// kind in every category.
func (r *Registry) SetKey(kind, key string) {
	r.keys[strings.ToLower(kind)] = key
}

// Resolve returns the template registered for (category, kind).
func (r *Registry) Resolve(category Category, kind string) (Entry, error) {
	kind = strings.ToLower(kind)
	root, ok := r.paths[category][kind]
	if !ok {
		return Entry{}, werrors.NewUnknownTemplateError(
			fmt.Sprintf("'%s' is not a known %s template", kind, category),
			fmt.Sprintf("run '%s templates' to list registered templates", branding.CLIName()),
		)
	}
	return r.entry(category, kind, root), nil
}

// Entries returns all templates of category sorted by kind.
func (r *Registry) Entries(category Category) []Entry {
	kinds := make([]string, 0, len(r.paths[category]))
	for kind := range r.paths[category] {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	result := make([]Entry, 0, len(kinds))
	for _, kind := range kinds {
		result = append(result, r.entry(category, kind, r.paths[category][kind]))
	}
	return result
}

func (r *Registry) entry(category Category, kind, root string) Entry {
	key, ok := r.keys[kind]
	if !ok {
		key = DefaultKey
	}

	e := Entry{
		Category: category,
		Kind:     kind,
		Root:     root,
		Key:      key,
	}
	e.Manifest, e.ManifestWarnings = loadManifest(root)
	return e
}

// loadManifest reads and validates the optional descriptor in root.
func loadManifest(root string) (*manifest.TemplateManifest, []string) {
	path := filepath.Join(root, manifest.FileName)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		return nil, []string{fmt.Sprintf("could not validate %s: %v", path, err)}
	}

	var warnings []string
	if !result.Valid {
		for _, issue := range result.Issues {
			warnings = append(warnings, fmt.Sprintf("%s: %s", path, issue))
		}
	}

	m, err := manifest.ParseFile(path)
	if err != nil {
		return nil, append(warnings, err.Error())
	}
	return m, warnings
}
