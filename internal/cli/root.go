package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/extwizard/extwizard/internal/branding"
	"github.com/extwizard/extwizard/internal/config"
	werrors "github.com/extwizard/extwizard/internal/errors"
	"github.com/extwizard/extwizard/internal/output"
	"github.com/extwizard/extwizard/internal/wizard"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

// wizardOptions holds the root command flags.
type wizardOptions struct {
	createExtension string
	addModules      []string
	templatePaths   []string
	templateKeys    []string
}

var rootOpts wizardOptions

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [destination]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies a template tree into a new extension or module, replacing the
template's substitution key with the new name in file names and contents.
Modules are registered in the parent project's CMakeLists.txt.

Examples:
  extwizard --createExtension MyExtension ~/src
  extwizard --createExtension superbuild:MyExtension --addModule cli:MyFilter ~/src
  extwizard --addModule scripted:Sharpen --templateKey scripted=ScriptedLoadableModuleTemplate .`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		output.SetupLogging(verbose || config.Verbose())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		destination := ""
		if len(args) == 1 {
			destination = args[0]
		}
		return runWizard(cmd.OutOrStdout(), rootOpts, destination)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&rootOpts.createExtension, "createExtension", "",
		"create extension `[TYPE:]NAME` under the destination directory; any modules are added to the new extension (default type: 'default')")
	f.StringArrayVar(&rootOpts.addModules, "addModule", nil,
		"add new module `TYPE:NAME` to an existing project in the destination directory; may use more than once")
	f.StringArrayVar(&rootOpts.templatePaths, "templatePath", nil,
		"add template path `[CATEGORY=]PATH`; without a category, PATH holds subdirectories for one or more categories")
	f.StringArrayVar(&rootOpts.templateKeys, "templateKey", nil,
		"set substitution key `TYPE=KEY` for a template (default key: 'TemplateKey')")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// runWizard builds the registry and the request from opts and runs them
// against destination (the working directory when empty).
func runWizard(out io.Writer, opts wizardOptions, destination string) error {
	reg, err := newRegistry(opts.templatePaths, opts.templateKeys)
	if err != nil {
		return err
	}

	req, err := buildRequest(opts)
	if err != nil {
		return err
	}
	if req.Empty() {
		return werrors.NewInvalidArgumentError("no action was requested!",
			"pass --createExtension and/or --addModule")
	}

	if destination == "" {
		destination, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
	}

	w := wizard.New(reg, destination, wizard.WithVersion(buildVersion))
	results, err := w.Run(req)
	printResults(out, results)
	return err
}

func buildRequest(opts wizardOptions) (wizard.Request, error) {
	var req wizard.Request

	if opts.createExtension != "" {
		spec, err := wizard.ParseExtensionArg(opts.createExtension)
		if err != nil {
			return req, err
		}
		req.Extension = &spec
	}

	for _, arg := range opts.addModules {
		spec, err := wizard.ParseModuleArg(arg)
		if err != nil {
			return req, err
		}
		req.Modules = append(req.Modules, spec)
	}

	return req, nil
}

func printResults(out io.Writer, results []*wizard.Result) {
	for _, r := range results {
		msg := fmt.Sprintf("created %s %s at %s (%s)",
			r.Category, output.StyleNoun.Render(r.Name), r.Destination, filesLabel(len(r.Files)))
		fmt.Fprintln(out, output.FormatCheckmark(msg))
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		output.Error(err.Error())
		if hint := werrors.HintOf(err); hint != "" {
			output.Info("hint: " + hint)
		}
	}
	return err
}
