// Package cli implements the extwizard command tree with cobra. The root
// command creates extensions and adds modules; subcommands list templates,
// manage settings and print version information.
package cli
