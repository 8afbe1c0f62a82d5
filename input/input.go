//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package input provides low-level reading of codepoints from text to be
// escaped or unescaped. All escapers and unescapers read their source through
// this package so that multi-byte sequences are handled in exactly one place.
package input

import "unicode/utf8"

// EOS = End of source
const EOS = rune(-1)

// Rune reads the codepoint starting at byte position i of s and returns it
// together with the number of bytes it occupies. A byte that is not part of
// a valid encoding yields utf8.RuneError with width 1; callers that copy
// source text verbatim keep such bytes unmodified.
func Rune(s string, i int) (rune, int) {
	r := rune(s[i])
	if r < utf8.RuneSelf {
		return r, 1
	}
	return utf8.DecodeRuneInString(s[i:])
}

// RuneBytes is Rune for byte slices.
func RuneBytes(b []byte, i int) (rune, int) {
	r := rune(b[i])
	if r < utf8.RuneSelf {
		return r, 1
	}
	return utf8.DecodeRune(b[i:])
}

// At returns the codepoint starting at byte position i, or EOS if i lies at
// or beyond the end of s.
func At(s string, i int) rune {
	if i >= len(s) {
		return EOS
	}
	r, _ := Rune(s, i)
	return r
}
