// File: coerce.go
// Title: Text Coercion
// Description: Converts text-like values to a plain string for TextBox
//              construction.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textbox

import (
	"fmt"
	"strconv"
)

// From converts v to text. Strings are taken as is, []byte and []rune are
// copied, fmt.Stringer and error values use their text, numbers and bools use
// their shortest decimal form and nil yields "". Anything else is formatted
// with fmt.Sprint.
func From(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case *TextBox:
		if vv == nil {
			return ""
		}
		return vv.value
	case []byte:
		return string(vv)
	case []rune:
		return string(vv)
	case fmt.Stringer:
		return vv.String()
	case error:
		return vv.Error()
	case bool:
		return strconv.FormatBool(vv)
	case int:
		return strconv.Itoa(vv)
	case int64:
		return strconv.FormatInt(vv, 10)
	case int32:
		return strconv.FormatInt(int64(vv), 10)
	case uint:
		return strconv.FormatUint(uint64(vv), 10)
	case uint64:
		return strconv.FormatUint(vv, 10)
	case float64:
		return strconv.FormatFloat(vv, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(vv), 'f', -1, 32)
	default:
		return fmt.Sprint(vv)
	}
}
