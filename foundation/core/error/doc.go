// Package error provides structured error handling for the textbox foundation.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a code, a severity, free-form details and a
//              stack trace. They wrap other errors and match each other by
//              code, so package level sentinels work with errors.Is.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: errors.Is/As integration, text processing codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/textbox/foundation/core/error"
//
//	err := mdwerror.New("malformed structured data").
//		WithCode(mdwerror.CodeBadStructuredData).
//		WithDetail("offset", 12)
//
//	wrapped := mdwerror.Wrap(err, "recipe step failed")
//	if mdwerror.HasCode(wrapped, mdwerror.CodeBadStructuredData) {
//		// handle parse failures
//	}
package error
