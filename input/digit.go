//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package input

// Digit helpers for numeric escape sequences. Values are computed per digit,
// so no substring is ever allocated while parsing a numeric reference.

// HexDigit returns the value of r as a hexadecimal digit.
func HexDigit(r rune) (int, bool) {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// DecDigit returns the value of r as a decimal digit.
func DecDigit(r rune) (int, bool) {
	if '0' <= r && r <= '9' {
		return int(r - '0'), true
	}
	return 0, false
}

// IsHexDigit reports whether r is a hexadecimal digit.
func IsHexDigit(r rune) bool {
	_, ok := HexDigit(r)
	return ok
}

// IsDecDigit reports whether r is a decimal digit.
func IsDecDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// ParseHex4 parses exactly four hexadecimal digits starting at byte position
// i of s. It returns the parsed value and false if fewer than four valid
// digits are available.
func ParseHex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var val rune
	for k := 0; k < 4; k++ {
		d, ok := HexDigit(rune(s[i+k]))
		if !ok {
			return 0, false
		}
		val = val<<4 | rune(d)
	}
	return val, true
}
