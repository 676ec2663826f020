package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnnutri"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnnutri by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnnutri/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ReportDir returns the default directory for exported workbooks.
// Returns ~/.local/share/gnnutri/reports by default.
func ReportDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "reports")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnnutri/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// LayoutFilePath returns the full path to the layout.yaml file with
// column names of input tables.
// Returns ~/.config/gnnutri/layout.yaml by default.
func LayoutFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "layout.yaml")
}
