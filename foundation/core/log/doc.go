// Package log provides structured logging for the textbox tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logging with context fields, correlation ids and
//              JSON, text, console or logfmt output. Structured errors are
//              logged at a level derived from their severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Synchronous only, deterministic field order
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatLogfmt).
//		WithField("recipe", "slugify")
//
//	logger.Debug("step applied", log.Fields{"op": "replace", "length": 17})
//
//	timer := logger.StartTimer("recipe")
//	// ... apply steps
//	timer.Stop()
package log
