// Package extensions reconciles the editor extension IDs declared in a
// development container definition with the workspace extension
// recommendations.
//
// The comparison is set based: order is ignored and duplicates collapse.
// Missing structure in either document is not an error and yields an
// empty set; only a missing file or malformed JSON fails a check.
//
// Example usage:
//
//	result, err := extensions.Check(ctx, extensions.Paths(root))
//	if err != nil {
//	    return err // *errors.ConfigLoadError
//	}
//	if err := extensions.WriteReport(os.Stdout, result); err != nil {
//	    return err
//	}
//	if !result.InSync() {
//	    os.Exit(1)
//	}
package extensions
