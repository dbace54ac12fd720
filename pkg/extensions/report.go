package extensions

import (
	"fmt"
	"io"

	"github.com/agentstation/extcheck/pkg/constants"
)

// Report lines
const (
	InSyncLine = "devcontainer and workspace extension recommendations are in sync."
	DifferLine = "devcontainer extension list and .vscode recommendations differ."
)

// WriteReport writes the human readable report for r to w.
func WriteReport(w io.Writer, r Result) error {
	if r.InSync() {
		_, err := fmt.Fprintln(w, InSyncLine)
		return err
	}
	if _, err := fmt.Fprintln(w, DifferLine); err != nil {
		return err
	}
	if err := writeBlock(w, constants.DevcontainerDisplayPath, r.MissingFromContainer); err != nil {
		return err
	}
	return writeBlock(w, constants.ExtensionsDisplayPath, r.MissingFromRecommendations)
}

func writeBlock(w io.Writer, file string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Missing from %s:\n", file); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "  - %s\n", id); err != nil {
			return err
		}
	}
	return nil
}
