package duconfig

import (
	"fmt"
	"strconv"
)

// Value is a scalar setting in its exact rendered spelling. The constructor
// chooses radix and formatting, rendering never reformats.
type Value struct {
	text string
}

// String builds a double-quoted string literal.
func String(s string) Value {
	return Value{text: strconv.Quote(s)}
}

// Int builds a plain decimal literal.
func Int(v int64) Value {
	return Value{text: strconv.FormatInt(v, 10)}
}

// Hex builds a 0x literal. The digits after the 0x prefix are zero-padded to
// at least minDigits; the prefix does not count towards the width.
func Hex(v int64, minDigits int) Value {
	return Value{text: "0x" + fmt.Sprintf("%0*x", minDigits, v)}
}

// Long builds a decimal literal carrying the long suffix.
func Long(v int64) Value {
	return Value{text: strconv.FormatInt(v, 10) + "L"}
}

// Raw takes s verbatim. MCC and MNC identifiers keep significant leading
// zeros this way.
func Raw(s string) Value {
	return Value{text: s}
}
