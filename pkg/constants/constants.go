// Package constants provides shared constants used throughout the extcheck codebase.
// This includes the checked file locations, JSON key paths, exit codes, and
// other values that should be consistent across the application.
package constants

// Path constants locate the two checked files relative to the repository root
const (
	// DevcontainerDir is the directory holding the development container definition
	DevcontainerDir = ".devcontainer"

	// DevcontainerFile is the development container definition file name
	DevcontainerFile = "devcontainer.json"

	// VSCodeDir is the directory holding workspace editor settings
	VSCodeDir = ".vscode"

	// ExtensionsFile is the workspace extension recommendations file name
	ExtensionsFile = "extensions.json"
)

// Display names are the root-relative paths used in reports
const (
	// DevcontainerDisplayPath names the devcontainer file in reports
	DevcontainerDisplayPath = DevcontainerDir + "/" + DevcontainerFile

	// ExtensionsDisplayPath names the recommendations file in reports
	ExtensionsDisplayPath = VSCodeDir + "/" + ExtensionsFile
)

// JSON key paths
var (
	// ContainerExtensionsPath is the key path of the extension list in devcontainer.json
	ContainerExtensionsPath = []string{"customizations", "vscode", "extensions"}

	// RecommendationsPath is the key path of the extension list in extensions.json
	RecommendationsPath = []string{"recommendations"}
)

// Exit codes returned by the CLI
const (
	// ExitOK means both extension lists are identical as sets
	ExitOK = 0

	// ExitMismatch means the lists differ; the report is on stdout
	ExitMismatch = 1

	// ExitError means an input file is missing or malformed, or the command line is invalid
	ExitError = 2
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Environment variable names
const (
	// EnvPrefix is the prefix viper uses for extcheck environment variables
	EnvPrefix = "EXTCHECK"

	// EnvRoot overrides repository root discovery
	EnvRoot = "EXTCHECK_ROOT"
)
