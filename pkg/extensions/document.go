package extensions

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/agentstation/extcheck/pkg/constants"
	"github.com/agentstation/extcheck/pkg/errors"
)

// Sources locates the two documents that are compared.
type Sources struct {
	Devcontainer    string
	Recommendations string
}

// Paths returns the Sources for the repository rooted at root.
func Paths(root string) Sources {
	return Sources{
		Devcontainer:    filepath.Join(root, constants.DevcontainerDir, constants.DevcontainerFile),
		Recommendations: filepath.Join(root, constants.VSCodeDir, constants.ExtensionsFile),
	}
}

// LoadDocument reads path and decodes it into a generic JSON value.
// Comments and trailing commas are accepted, as both files are JSONC
// for the editor. Any failure is returned as *errors.ConfigLoadError.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// ConfigLoadError names the path; keep only the cause below it.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, errors.WrapConfigLoad(path, errors.WrapIO("read", "", err))
	}
	doc, err := ParseDocument("", data)
	if err != nil {
		return nil, errors.WrapConfigLoad(path, err)
	}
	return doc, nil
}

// ParseDocument decodes JSONC data. name, when set, is recorded as the
// File of a returned *errors.ParseError.
func ParseDocument(name string, data []byte) (any, error) {
	var doc any
	// jsonc.ToJSON keeps the input length, so decoder offsets still point into data.
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		parseErr := errors.NewParseError("json", name, err.Error(), err)
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			parseErr.Offset = syntaxErr.Offset
		}
		return nil, parseErr
	}
	return doc, nil
}
