// Package config provides configuration loading for the textbox tools.
//
// Package: config
// Title: Core Configuration Management
// Description: Loads TOML or YAML configuration from files or strings,
//              layers it over nested defaults and resolves keys in dot
//              notation. Keys can be overridden through prefixed
//              environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Discovery by explicit path and environment variable
//
// Usage:
//
//	cfg, err := config.Discover(config.DiscoveryOptions{
//		ExplicitPath: flagPath,
//		PathEnvVar:   "TEXTBOX_CONFIG",
//		EnvPrefix:    "TEXTBOX",
//		Defaults: map[string]interface{}{
//			"log": map[string]interface{}{"level": "info"},
//		},
//	})
//	if err != nil {
//		return err
//	}
//	level := cfg.GetString("log.level") // TEXTBOX_LOG_LEVEL wins when set
package config
