// File: discovery.go
// Title: Configuration Discovery
// Description: Locates a configuration file from an explicit path, an
//              environment variable or a list of search directories and
//              falls back to defaults when nothing is found.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with path based discovery
// - 2026-10-17 v0.2.0: Explicit path and environment variable precedence

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	ExplicitPath string                 // path given by the user, wins over everything
	PathEnvVar   string                 // environment variable holding a path
	Paths        []string               // directories to search
	Filenames    []string               // base filenames without extension
	Extensions   []string               // extensions to try
	EnvPrefix    string                 // prefix for value overrides
	Defaults     map[string]interface{} // used for missing keys and when no file exists
}

// Discover loads the first configuration file found. An explicit path or a
// path from PathEnvVar must exist; searched directories are optional and a
// miss yields a configuration holding only the defaults.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	if options.ExplicitPath != "" {
		return LoadWithOptions(options.ExplicitPath, loadOptions)
	}

	if options.PathEnvVar != "" {
		if path := strings.TrimSpace(os.Getenv(options.PathEnvVar)); path != "" {
			cfg, err := LoadWithOptions(path, loadOptions)
			if err != nil {
				return nil, mdwerror.Wrap(err, "config from "+options.PathEnvVar).
					WithDetail("envVar", options.PathEnvVar)
			}
			return cfg, nil
		}
	}

	if path, ok := FindConfigFile(options); ok {
		return LoadWithOptions(path, loadOptions)
	}

	return FromDefaults(options.Defaults, options.EnvPrefix), nil
}

// FindConfigFile searches the configured directories for a file
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, path := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	var paths []string
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
