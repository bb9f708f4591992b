package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/registry"
	"github.com/spf13/cobra"
)

var (
	templatesCategory string
	templatesJSON     bool
	templatesPaths    []string
	templatesKeys     []string
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List registered templates",
	Long: `List the extension and module templates available to --createExtension and
--addModule, after built-in, configured and --templatePath discovery.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTemplates(cmd.OutOrStdout(), templatesCategory, templatesJSON, templatesPaths, templatesKeys)
	},
}

func init() {
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "", "Filter by category (extension, module)")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	templatesCmd.Flags().StringArrayVar(&templatesPaths, "templatePath", nil, "add template path `[CATEGORY=]PATH`")
	templatesCmd.Flags().StringArrayVar(&templatesKeys, "templateKey", nil, "set substitution key `TYPE=KEY`")
	rootCmd.AddCommand(templatesCmd)
}

// templateEntry represents a registered template for display.
type templateEntry struct {
	Category    string   `json:"category"`
	Kind        string   `json:"kind"`
	Key         string   `json:"key"`
	Root        string   `json:"root"`
	Description string   `json:"description,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

func runTemplates(out io.Writer, category string, asJSON bool, paths, keys []string) error {
	categories := registry.Categories()
	if category != "" {
		c, err := registry.ParseCategory(category)
		if err != nil {
			return werrors.NewInvalidArgumentError(err.Error(), "use extension or module")
		}
		categories = []registry.Category{c}
	}

	reg, err := newRegistry(paths, keys)
	if err != nil {
		return err
	}

	var entries []templateEntry
	for _, c := range categories {
		for _, e := range reg.Entries(c) {
			entries = append(entries, templateEntry{
				Category:    string(e.Category),
				Kind:        e.Kind,
				Key:         e.Key,
				Root:        e.Root,
				Description: e.Description(),
				Warnings:    e.ManifestWarnings,
			})
		}
	}

	if asJSON {
		return printTemplatesJSON(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No templates registered. Use --templatePath or set builtin_templates.")
		return nil
	}
	return printTemplatesTable(out, entries)
}

func printTemplatesTable(out io.Writer, entries []templateEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tKIND\tKEY\tDESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Category, e.Kind, e.Key, desc)
	}
	return w.Flush()
}

func printTemplatesJSON(out io.Writer, entries []templateEntry) error {
	if entries == nil {
		entries = []templateEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
