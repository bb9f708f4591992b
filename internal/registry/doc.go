// Package registry holds the template registry used by the wizard. It maps a
// (category, kind) pair to a template root directory and a substitution key.
// Template roots are discovered from base directories containing "extensions"
// and "modules" subdirectories, or registered directly for one category.
//
// A Registry is caller-owned state: each run builds its own instance.
package registry
