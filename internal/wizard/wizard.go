package wizard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/extwizard/extwizard/internal/cmake"
	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/manifest"
	"github.com/extwizard/extwizard/internal/output"
	"github.com/extwizard/extwizard/internal/registry"
	"github.com/extwizard/extwizard/internal/scaffold"
)

// Wizard creates extensions and modules below a base destination.
type Wizard struct {
	registry    *registry.Registry
	destination string
	version     string
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithVersion sets the tool version checked against template requirements.
func WithVersion(version string) Option {
	return func(w *Wizard) { w.version = version }
}

// New returns a Wizard that resolves templates through reg and writes below
// destination.
func New(reg *registry.Registry, destination string, opts ...Option) *Wizard {
	w := &Wizard{
		registry:    reg,
		destination: destination,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Destination returns the current base destination. It moves into a newly
// created extension.
func (w *Wizard) Destination() string {
	return w.destination
}

// Result describes one generated project.
type Result struct {
	Category    registry.Category
	Kind        string
	Name        string
	Key         string
	Destination string
	Files       []string
}

// CreateExtension instantiates the extension template kind as name. An empty
// kind selects the default template. On success the new extension becomes the
// destination for later modules.
func (w *Wizard) CreateExtension(kind, name string) (*Result, error) {
	if kind == "" {
		kind = registry.DefaultKind
	}

	result, err := w.copyTemplate(registry.CategoryExtension, kind, name)
	if err != nil {
		return nil, err
	}

	w.destination = result.Destination
	output.Info("created extension", "name", name)
	return result, nil
}

// AddModule registers name in the build script of the current destination,
// then instantiates the module template kind as name.
func (w *Wizard) AddModule(kind, name string) (*Result, error) {
	if err := cmake.AddToProject(w.destination, name); err != nil {
		return nil, err
	}

	result, err := w.copyTemplate(registry.CategoryModule, kind, name)
	if err != nil {
		return nil, err
	}

	output.Info("created module", "name", name)
	return result, nil
}

// copyTemplate resolves (category, kind) and instantiates it into a fresh
// directory below the destination.
func (w *Wizard) copyTemplate(category registry.Category, kind, name string) (*Result, error) {
	entry, err := w.registry.Resolve(category, kind)
	if err != nil {
		return nil, err
	}
	w.checkManifest(entry)

	destination := filepath.Join(w.destination, name)
	if _, err := os.Lstat(destination); err == nil {
		return nil, werrors.NewDestinationExistsError(
			fmt.Sprintf("create %s: refusing to overwrite existing directory", category), destination)
	}

	output.Info("copy template",
		"template", entry.Root,
		"destination", destination,
		"replacing", fmt.Sprintf("'%s' -> '%s'", entry.Key, name))

	files, err := scaffold.Instantiate(entry.Root, destination, entry.Key, name)
	if err != nil {
		return nil, fmt.Errorf("instantiating %s template '%s': %w", category, entry.Kind, err)
	}

	return &Result{
		Category:    category,
		Kind:        entry.Kind,
		Name:        name,
		Key:         entry.Key,
		Destination: destination,
		Files:       files,
	}, nil
}

// checkManifest logs descriptor problems and version mismatches. Neither
// stops instantiation.
func (w *Wizard) checkManifest(entry registry.Entry) {
	for _, warning := range entry.ManifestWarnings {
		output.Warn("template descriptor", "kind", entry.Kind, "issue", warning)
	}
	if entry.Manifest == nil || w.version == "" {
		return
	}

	ok, err := manifest.CheckCompatible(entry.Manifest.Requires, w.version)
	if err != nil {
		output.Warn("template descriptor", "kind", entry.Kind, "issue", err)
		return
	}
	if !ok {
		output.Warn("template may not be compatible with this version",
			"kind", entry.Kind, "requires", entry.Manifest.Requires, "version", w.version)
	}
}
