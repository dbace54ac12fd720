// Package application provides the application interface for extcheck commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            root, err := app.Root()
//	            if err != nil {
//	                return err
//	            }
//	            // ... check the repository at root
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    RootFunc: func() (string, error) {
//	        return t.TempDir(), nil
//	    },
//	}
//	cmd := check.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"
)

// Application provides the application interface that commands need.
// The App struct from cmd/extcheck/app implements this interface.
type Application interface {
	// Root returns the repository root holding .devcontainer and .vscode.
	Root() (string, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured report format (text, json, yaml, table, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
