// Package errors provides the standard error constructors for all textbox
// foundation packages.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Builds structured errors (see package error) with module and
//              operation context, and offers helpers to analyse them. Library
//              code creates its errors here; only application code (CLI)
//              wraps further.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: textbox, recipe and config constructors
//
// Usage:
//
//	err := errors.NewErrorBuilder(errors.ModuleTextbox).
//		Operation("cut").
//		Message("negative length").
//		Code(mdwerror.CodeInvalidInput).
//		Build()
//
//	if errors.IsModuleOperation(err, errors.ModuleTextbox, "cut") {
//		// ...
//	}
package errors
