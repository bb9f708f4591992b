// Package manifest handles the optional template.yaml descriptor that a
// template root may carry. It parses the descriptor, validates it against an
// embedded JSON Schema, and checks its version requirement against the
// running tool.
package manifest
