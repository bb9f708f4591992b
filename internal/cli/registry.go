package cli

import (
	"github.com/extwizard/extwizard/internal/config"
	"github.com/extwizard/extwizard/internal/output"
	"github.com/extwizard/extwizard/internal/registry"
)

// newRegistry builds the template registry for one run. Registration order
// decides shadowing: built-in templates, then config paths, then --templatePath
// arguments in the order given. Keys from config apply before --templateKey.
func newRegistry(templatePaths, templateKeys []string) (*registry.Registry, error) {
	reg := registry.NewRegistry()

	if builtin := config.BuiltinTemplatesDir(); builtin != "" {
		output.Debug("registering built-in templates", "path", builtin)
		if err := reg.RegisterCategoryTree(builtin); err != nil {
			return nil, err
		}
	}

	paths := append(config.TemplatePaths(), templatePaths...)
	for _, p := range paths {
		output.Debug("registering template path", "arg", p)
		if err := reg.AddPathArg(p); err != nil {
			return nil, err
		}
	}

	for kind, key := range config.TemplateKeys() {
		reg.SetKey(kind, key)
	}
	for _, k := range templateKeys {
		if err := reg.AddKeyArg(k); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
