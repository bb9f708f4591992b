package wizard

import (
	"fmt"
	"strings"

	werrors "github.com/extwizard/extwizard/internal/errors"
)

// Spec names one project to generate: a template kind and the new name.
type Spec struct {
	Kind string
	Name string
}

// Request is one invocation: an optional extension followed by modules.
type Request struct {
	Extension *Spec
	Modules   []Spec
}

// Empty reports whether the request asks for nothing.
func (r Request) Empty() bool {
	return r.Extension == nil && len(r.Modules) == 0
}

// ParseExtensionArg parses "[TYPE:]NAME".
func ParseExtensionArg(arg string) (Spec, error) {
	parts := strings.Split(arg, ":")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return Spec{Name: parts[0]}, nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return Spec{Kind: parts[0], Name: parts[1]}, nil
	}
	return Spec{}, werrors.NewInvalidArgumentError(
		fmt.Sprintf("extension '%s' malformatted: expected '[TYPE:]NAME'", arg), "")
}

// ParseModuleArg parses "TYPE:NAME".
func ParseModuleArg(arg string) (Spec, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Spec{}, werrors.NewInvalidArgumentError(
			fmt.Sprintf("module '%s' malformatted: expected 'TYPE:NAME'", arg), "")
	}
	return Spec{Kind: parts[0], Name: parts[1]}, nil
}

// Run creates the requested extension, then adds each module in order. It
// stops at the first failure and returns the results produced so far.
func (w *Wizard) Run(req Request) ([]*Result, error) {
	if req.Empty() {
		return nil, werrors.NewInvalidArgumentError("no action was requested!",
			"pass --createExtension and/or --addModule")
	}

	var results []*Result

	if req.Extension != nil {
		result, err := w.CreateExtension(req.Extension.Kind, req.Extension.Name)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	for _, m := range req.Modules {
		result, err := w.AddModule(m.Kind, m.Name)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}
