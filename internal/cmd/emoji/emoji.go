// Package emoji provides symbol constants for CLI output.
// These symbols keep status columns consistent across output formats.
package emoji

// Symbol constants for status indicators in tabular output.
const (
	// Success represents an extension present in both files, or a clean check.
	Success = "✓"

	// Error represents an extension missing from one of the files.
	Error = "✗"

	// Optional marks an empty cell.
	Optional = "-"
)
