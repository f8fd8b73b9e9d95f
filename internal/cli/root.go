package cli

import (
	"io"

	"github.com/arthur-debert/deeplink/internal/version"
	"github.com/arthur-debert/deeplink/pkg/config"
	"github.com/arthur-debert/deeplink/pkg/deeplink"
	"github.com/arthur-debert/deeplink/pkg/dispatch"
	"github.com/arthur-debert/deeplink/pkg/errors"
	"github.com/arthur-debert/deeplink/pkg/input"
	"github.com/arthur-debert/deeplink/pkg/logging"
	"github.com/arthur-debert/deeplink/pkg/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app holds the global flags and what PersistentPreRunE resolves from them.
type app struct {
	fs afero.Fs

	verbosity  int
	configFile string
	format     string
	scheme     string
	profiles   []string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	initTemplateFormatting()

	a := &app{fs: fs}

	rootCmd := &cobra.Command{
		Use:     "deeplink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&a.scheme, "scheme", "", MsgFlagScheme)
	rootCmd.PersistentFlags().StringArrayVar(&a.profiles, "profile", nil, MsgFlagProfile)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "links", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newBuildCmd(a))
	rootCmd.AddCommand(newRouteCmd(a))
	rootCmd.AddCommand(newActionsCmd(a))
	rootCmd.AddCommand(newPlistCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// setup loads the configuration and configures logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("scheme") {
		overrides["scheme"] = a.scheme
	}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	logging.Setup(logging.Options{
		Verbosity:   a.verbosity,
		FileLogging: cfg.Log.File,
		Console:     cmd.ErrOrStderr(),
	})
	logging.LogCommand(cmd.CommandPath(), args)
	logger := logging.WithFields(map[string]interface{}{
		"scheme":   cfg.Scheme,
		"format":   cfg.Output.Format,
		"profiles": cfg.KnownProfiles(a.profiles...),
	})
	logger.Debug().Msg("Configuration loaded")
	return nil
}

func (a *app) interpreter() *deeplink.Interpreter {
	return deeplink.New(a.cfg.Scheme)
}

func (a *app) renderer(w io.Writer) (*output.Renderer, error) {
	format, err := output.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(w, output.Resolve(format, w, a.cfg.Output.Plain))
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	return dispatch.New(dispatch.Options{
		Interpreter: a.interpreter(),
		Profiles: dispatch.Profiles{
			Known:   a.cfg.KnownProfiles(a.profiles...),
			Default: a.cfg.Profiles.Default,
			Suggest: a.cfg.Profiles.Suggest,
		},
	})
}

// links gathers links from args and, when set, the --file flag.
func (a *app) links(cmd *cobra.Command, args []string, file string) ([]string, error) {
	links := append([]string(nil), args...)
	if file != "" {
		fromFile, err := input.ReadLinks(a.fs, file, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		links = append(links, fromFile...)
	}
	if len(links) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, MsgErrNoLinks)
	}
	return links, nil
}

func failuresError(rep output.Report) error {
	if n := rep.Failures(); n > 0 {
		return errors.Newf(errors.ErrInvalidInput, MsgErrLinksFailed, n, len(rep.Entries)).
			WithDetail("failed", n).
			WithDetail("total", len(rep.Entries))
	}
	return nil
}
