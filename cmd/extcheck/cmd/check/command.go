// Package check implements the extension reconciliation command.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/extcheck/cmd/application"
	"github.com/agentstation/extcheck/internal/cmd/output"
	"github.com/agentstation/extcheck/pkg/errors"
	"github.com/agentstation/extcheck/pkg/extensions"
	"github.com/agentstation/extcheck/pkg/logging"
)

// NewCommand creates the check command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compare devcontainer extensions with workspace recommendations",
		Long: `Compare the extension IDs in .devcontainer/devcontainer.json
(customizations.vscode.extensions) with the recommendations in
.vscode/extensions.json.

Both files are read as JSON with comments (JSONC), the way VS Code reads
them: // and /* */ comments and trailing commas are accepted.

Exits 0 when both lists hold the same extensions, 1 when they differ,
and 2 when either file is missing or is not valid JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), app, cmd.OutOrStdout())
		},
	}
}

// Run checks the repository resolved by app and writes the report to w.
// A mismatch is reported as *errors.MismatchError after the report is written.
func Run(ctx context.Context, app application.Application, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return err
	}

	root, err := app.Root()
	if err != nil {
		return err
	}

	ctx = logging.WithLogger(ctx, app.Logger())
	ctx = logging.WithRoot(ctx, root)
	ctx = logging.WithOperation(ctx, "check")
	logging.FromContext(ctx).Debug().Str("format", string(format)).Msg("Checking extension lists")

	result, err := extensions.Check(ctx, extensions.Paths(root))
	if err != nil {
		return err
	}

	if err := output.NewFormatter(format).Format(w, output.NewReport(result)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !result.InSync() {
		return errors.NewMismatchError(len(result.MissingFromContainer), len(result.MissingFromRecommendations))
	}
	return nil
}
