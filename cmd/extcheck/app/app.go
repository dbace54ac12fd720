// Package app provides the application context and dependency management
// for the extcheck CLI. It centralizes configuration, logging, and the
// output streams so commands stay free of process-wide state.
package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/extcheck/cmd/application"
	"github.com/agentstation/extcheck/pkg/errors"
	"github.com/agentstation/extcheck/pkg/logging"
)

// App represents the extcheck application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer

	// Injected for tests; default to the os package.
	getwd func() (string, error)
	stat  func(string) (os.FileInfo, error)
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and can be replaced
// using functional options. The logger is built from the final configuration
// unless WithLogger supplies one.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		getwd:   os.Getwd,
		stat:    os.Stat,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapConfigLoad("environment", err)
	}
	app.config = config

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}
	logging.SetDefault(*app.logger)

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured report format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Root resolves the repository root to check.
func (a *App) Root() (string, error) {
	root, err := ResolveRoot(a.config.Root, a.getwd, a.stat)
	if err != nil {
		return "", err
	}
	a.logger.Debug().Str("root", root).Msg("Resolved repository root")
	return root, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects the report and error streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

// WithWorkingDir makes root discovery start from dir instead of the process working directory.
func WithWorkingDir(dir string) Option {
	return func(a *App) error {
		a.getwd = func() (string, error) { return dir, nil }
		return nil
	}
}
