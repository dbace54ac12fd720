package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/extcheck/cmd/extcheck/cmd/check"
	"github.com/agentstation/extcheck/cmd/extcheck/cmd/version"
	"github.com/agentstation/extcheck/internal/cmd/output"
	"github.com/agentstation/extcheck/pkg/constants"
	"github.com/agentstation/extcheck/pkg/errors"
	"github.com/agentstation/extcheck/pkg/logging"
)

// Execute runs the extcheck CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// Run executes the CLI and maps the outcome to a process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	return ExitCode(a.Execute(ctx, args), a.stderr)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "extcheck",
		Short:   "Check that devcontainer extensions match workspace recommendations",
		Version: a.version,
		Long: `extcheck verifies that the VS Code extensions installed by
.devcontainer/devcontainer.json match the recommendations in
.vscode/extensions.json. Both files may contain comments and trailing
commas, as VS Code allows.

Running extcheck without a subcommand performs the check. The report is
written to stdout. Exit status is 0 when the lists agree, 1 when they
differ, and 2 when a file cannot be loaded or the command line is invalid.`,
		Args:              noArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check.Run(cmd.Context(), a, cmd.OutOrStdout())
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewValidationError("flags", nil, err.Error())
	})
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	// Env-loaded values are the defaults so flags only override what they set.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.Root, "root", a.config.Root, "repository root (default: nearest ancestor with "+constants.DevcontainerDir+")")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, fmt.Sprintf("report format: %v", output.Formats))
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("extcheck {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if (flags.Changed("verbose") || flags.Changed("quiet")) && !flags.Changed("log-level") {
		// -v/-q outrank LOG_LEVEL from the environment.
		a.config.LogLevel = ""
	}

	logger := newLogger(a.config, a.stderr)
	a.logger = &logger
	logging.SetDefault(logger)

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(check.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a, func() bool { return a.config.Verbose }))
}

// ExitCode maps an execution error to the process exit status and writes
// the error to stderr when it is not a plain mismatch.
func ExitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return constants.ExitOK
	case errors.IsMismatch(err):
		// The report on stdout already says everything.
		return constants.ExitMismatch
	case errors.IsCanceled(err):
		_, _ = fmt.Fprintln(stderr, "Error: interrupted")
	case errors.IsConfigLoad(err):
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.IsNotFound(err) {
			_, _ = fmt.Fprintln(stderr, "Run extcheck inside the repository or pass --root.")
		}
	case errors.IsValidationError(err):
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(stderr, "Run 'extcheck --help' for usage.")
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return constants.ExitError
}

// ExitOnError prints err to stderr and exits with the error status.
// This is meant to be used in main.go for failures before the command runs.
func ExitOnError(err error) {
	if err != nil {
		os.Exit(ExitCode(err, os.Stderr))
	}
}

// noArgs rejects positional arguments as invalid input.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return errors.NewValidationError("args", args, err.Error())
	}
	return nil
}
