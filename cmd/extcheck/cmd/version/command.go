// Package version implements the version command.
package version

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/extcheck/cmd/application"
)

// NewCommand creates the version command. verbose reports whether build
// details should be printed as well.
func NewCommand(app application.Application, verbose func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("extcheck %s\n", app.Version())
			if verbose != nil && verbose() {
				cmd.Printf("  commit:   %s\n", app.Commit())
				cmd.Printf("  built:    %s\n", app.Date())
				cmd.Printf("  built by: %s\n", app.BuiltBy())
			}
		},
	}
}
