// Package iofs prepares directories and default configuration files of
// GNnutri in the user's home directory.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/templates"
)

// EnsureDirs creates config, log and default report directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
		config.ReportDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates a directory, for example a custom reports directory,
// if it does not exist.
func EnsureDir(dir string) error {
	return touchDir(dir)
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	return ensureFile(config.ConfigFilePath(homeDir), templates.ConfigYAML)
}

// EnsureLayoutFile writes the default layout.yaml unless it exists.
func EnsureLayoutFile(homeDir string) error {
	return ensureFile(config.LayoutFilePath(homeDir), templates.LayoutYAML)
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := touchDir(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return CopyFileError(path, err)
	}

	return nil
}
