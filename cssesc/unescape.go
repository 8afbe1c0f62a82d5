//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cssesc

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/escape"
	"github.com/unbescape/unbescape-sub001/input"
)

// Unescape decodes all CSS escapes of s. One unescaper serves identifiers
// and string literals alike: once written, a backslash escape decodes the
// same way no matter which escape set produced it. If s contains no
// backslash it is returned without a scan.
func Unescape(s string) string {
	return escape.Unescape(s, '\\', step)
}

// UnescapeBytes is Unescape for byte slices: nil in, nil out.
func UnescapeBytes(b []byte) []byte {
	return escape.UnescapeBytes(b, '\\', step)
}

// UnescapeTo decodes s and writes the result to w.
func UnescapeTo(w io.Writer, s string) error {
	return escape.UnescapeText(w, s, '\\', step)
}

// UnescapeRange decodes b[offset:offset+length] and writes the result to w,
// rejecting an invalid offset/length pair before any scanning.
func UnescapeRange(w io.Writer, b []byte, offset, length int) error {
	return escape.UnescapeRange(w, b, offset, length, '\\', step)
}

// UnescapeCopy decodes everything read from r and writes the result to w.
func UnescapeCopy(w io.Writer, r io.Reader) error {
	return escape.UnescapeCopy(w, r, '\\', step)
}

// NewUnescaper returns a transform.Transformer decoding a byte stream.
func NewUnescaper() transform.Transformer {
	return escape.Untransformer('\\', step)
}

// maxHexDigits is the length bound of a CSS hexadecimal escape.
const maxHexDigits = 6

func step(s string, i int, atEOF bool) (string, int, bool) {
	j := i + 1
	if j >= len(s) {
		if atEOF {
			// A trailing backslash escapes nothing; keep it.
			return "", 1, false
		}
		return "", 0, false
	}
	if !atEOF && !utf8.FullRuneInString(s[j:]) {
		return "", 0, false
	}
	r, w := input.Rune(s, j)
	if input.IsHexDigit(r) {
		return hexStep(s, i, atEOF)
	}
	switch r {
	case '\n', '\r', '\f':
		// A backslash before a newline is not an escape in the CSS
		// grammar. Drop the backslash and leave the newline for a
		// downstream parser to judge.
		return "", 1, true
	}
	// Any other character is escapable and decodes to itself.
	return s[j : j+w], 1 + w, true
}

// hexStep consumes up to six hexadecimal digits and, if present, one
// delimiting white space character (a CR-LF pair counts as one).
func hexStep(s string, i int, atEOF bool) (string, int, bool) {
	j, code, digits := i+1, 0, 0
	for j < len(s) && digits < maxHexDigits {
		d, ok := input.HexDigit(rune(s[j]))
		if !ok {
			break
		}
		code = code<<4 | d
		digits++
		j++
	}
	if j == len(s) && !atEOF {
		// More digits or the delimiter may follow.
		return "", 0, false
	}
	if j < len(s) {
		switch s[j] {
		case ' ', '\t', '\n', '\f':
			j++
		case '\r':
			j++
			if j == len(s) && !atEOF {
				return "", 0, false
			}
			if j < len(s) && s[j] == '\n' {
				j++
			}
		}
	}
	r := rune(code)
	if r == 0 || r > utf8.MaxRune || (0xD800 <= r && r <= 0xDFFF) {
		// Out of range per the CSS syntax: substitute the
		// replacement character.
		r = utf8.RuneError
	}
	return string(r), j - i, true
}
