// Package cli defines the anime-librarian command line surface and builds
// the application from flags, environment and defaults.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/laipz8200/anime-librarian/internal/app"
	"github.com/laipz8200/anime-librarian/internal/config"
	"github.com/laipz8200/anime-librarian/internal/console"
	"github.com/laipz8200/anime-librarian/internal/dify"
	"github.com/laipz8200/anime-librarian/internal/log"
)

// version is shown by --version; override at build time with
// -ldflags "-X github.com/laipz8200/anime-librarian/internal/cli.version=...".
var version = "dev"

type rootFlags struct {
	source  string
	target  string
	dryRun  bool
	yes     bool
	verbose bool
	format  string
	noColor bool
	quiet   bool
}

// Execute runs the command and returns the process exit code.
func Execute() int {
	code := 0
	cmd := newRootCmd(&code)
	if err := cmd.Execute(); err != nil {
		// cobra already printed the error (usage errors etc.)
		return 1
	}
	return code
}

func newRootCmd(exitCode *int) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:     "anime-librarian",
		Short:   "Rename and organize media files using AI suggestions",
		Long: `anime-librarian lists media files in a source directory and candidate
directories in a target location, asks a Dify workflow for a mapping from
each file to its new location, and performs the moves after confirmation.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := run(cmd, flags)
			*exitCode = code
			return err
		},
	}

	cmd.Flags().StringVar(&flags.source, "source", "", "override the configured source directory")
	cmd.Flags().StringVar(&flags.target, "target", "", "override the configured target directory")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "compute and display the plan, perform no moves")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "auto-confirm all prompts")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug-level logging")
	cmd.Flags().StringVar(&flags.format, "format", string(console.FormatTable), "plan listing format: table, plain, json or ndjson")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable styled output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress non-essential output")

	return cmd
}

func run(cmd *cobra.Command, flags *rootFlags) (int, error) {
	format, err := console.ParseFormat(flags.format)
	if err != nil {
		return 1, err
	}

	cfg, err := config.Load()
	if err != nil {
		return 1, err
	}
	if flags.source != "" {
		cfg.SourcePath = flags.source
	}
	if flags.target != "" {
		cfg.TargetPath = flags.target
	}
	if err := cfg.Validate(); err != nil {
		return 1, err
	}

	// The file sink is an append-only mirror of the console log stream.
	var fileSink io.Writer
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return 1, fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		fileSink = logFile
	}
	verbose := flags.verbose || cfg.Verbose
	logger := log.NewLogger(cmd.ErrOrStderr(), fileSink, cfg.LogFormat, verbose)
	defer func() { _ = logger.Sync() }()

	styles := console.DefaultStyles()
	if flags.noColor {
		styles = console.PlainStyles()
	}
	writer := console.NewWriter(cmd.OutOrStdout(), styles, flags.quiet)

	var confirmer console.Confirmer = console.SurveyConfirmer{}
	if flags.yes {
		confirmer = console.AutoConfirmer{}
	}

	resolver := dify.NewClient(cfg.Endpoint, cfg.APIKey, cfg.UserName, cfg.Timeout, logger)

	a := app.New(afero.NewOsFs(), cfg, resolver, writer, confirmer, styles, logger, app.Options{
		DryRun:      flags.dryRun,
		AutoConfirm: flags.yes,
		Format:      format,
	})
	return a.Run(cmd.Context()), nil
}
