// Package paths provides centralized path handling for stitch.
// It implements XDG Base Directory compliance and resolves the servers
// root that fragment directories live under.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvServersRoot overrides where server directories are looked up
	EnvServersRoot = "STITCH_SERVERS_ROOT"

	// EnvConfigDir overrides the XDG config directory for stitch
	EnvConfigDir = "STITCH_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for stitch-specific files
	AppDirName = "stitch"

	// ServersDirName is the subdirectory of the data dir holding servers
	ServersDirName = "servers"

	// ProjectDirName is the per-project bookkeeping directory
	ProjectDirName = ".stitch"

	// StateFileName is the project state file inside ProjectDirName
	StateFileName = "state.json"

	// DeclarationFileName is the declaration file at a server root
	DeclarationFileName = "stitch.toml"

	// ConfigFileName is the optional user configuration file
	ConfigFileName = "config.toml"
)

// ServersRoot returns the directory under which server identifiers are
// resolved. STITCH_SERVERS_ROOT wins over the XDG data dir.
func ServersRoot() string {
	if root := os.Getenv(EnvServersRoot); root != "" {
		return root
	}
	return filepath.Join(xdg.DataHome, AppDirName, ServersDirName)
}

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the full path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateFile returns the project state file path for a project root.
func StateFile(projectRoot string) string {
	return filepath.Join(projectRoot, ProjectDirName, StateFileName)
}

// ServerDir resolves a server identifier to its directory under root.
// Path-like identifiers (e.g. "github.com/acme/fragments") map to
// nested directories.
func ServerDir(root, identifier string) string {
	return filepath.Join(root, filepath.FromSlash(identifier))
}
