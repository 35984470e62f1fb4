// Package stringx provides the string helpers shared by the textbox packages.
//
// Package: stringx
// Title: Extended String Operations
// Description: Blank and numeric checks, Unicode safe truncation, default
//              selection and identifier normalization. The numeric grammar
//              backs TextBox.IsNumeric; NormalizeIdentifier lets recipe files
//              spell operation names in any common case style.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-17 v0.3.0: Numeric grammar, trimmed to the helpers in use
//
// Numeric strings
//
// IsNumeric accepts decimal integers and floats with an optional sign,
// decimal point and exponent, surrounded by optional ASCII whitespace:
//
//	stringx.IsNumeric("001")     // true
//	stringx.IsNumeric(" 1.5e3 ") // true
//	stringx.IsNumeric(".")       // false
//	stringx.IsNumeric("0x1A")    // false
package stringx
