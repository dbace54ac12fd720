package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/extcheck/pkg/constants"
	"github.com/agentstation/extcheck/pkg/errors"
)

// ResolveRoot returns the repository root. An explicit root wins; otherwise
// the nearest ancestor of the working directory that holds a .devcontainer
// directory is used, falling back to the working directory itself.
func ResolveRoot(
	explicit string,
	getwd func() (string, error),
	statFn func(string) (os.FileInfo, error),
) (string, error) {
	if resolved := strings.TrimSpace(explicit); resolved != "" {
		info, err := statFn(resolved)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", errors.NewValidationError("root", resolved, fmt.Sprintf("root %q does not exist", resolved))
			}
			return "", errors.WrapIO("stat", resolved, err)
		}
		if !info.IsDir() {
			return "", errors.NewValidationError("root", resolved, fmt.Sprintf("root %q is not a directory", resolved))
		}
		return filepath.Abs(resolved)
	}

	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("get current working directory: %w", err)
	}
	cwd, err = filepath.Abs(cwd)
	if err != nil {
		return "", err
	}

	for dir := cwd; ; {
		if info, err := statFn(filepath.Join(dir, constants.DevcontainerDir)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
