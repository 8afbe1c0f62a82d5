//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package propesc

import (
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/escape"
	"github.com/unbescape/unbescape-sub001/input"
)

// Unescape decodes all .properties escapes of s. One unescaper serves keys
// and values alike. Malformed escapes never produce an error: the backslash
// is consumed and the rest stays literal, which is how the java.util
// reference loader treats them. If s contains no backslash it is returned
// without a scan.
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

func step(s string, i int, atEOF bool) (string, int, bool) {
	j := i + 1
	if j >= len(s) {
		if atEOF {
			// A trailing backslash escapes nothing and is dropped.
			return "", 1, true
		}
		return "", 0, false
	}
	if !atEOF && !utf8.FullRuneInString(s[j:]) {
		return "", 0, false
	}
	c, w := input.Rune(s, j)
	switch c {
	case 't':
		return "\t", 2, true
	case 'n':
		return "\n", 2, true
	case 'f':
		return "\f", 2, true
	case 'r':
		return "\r", 2, true
	case '\\':
		return "\\", 2, true
	case 'u':
		return unicodeStep(s, i, atEOF)
	}
	// A backslash before any other character drops the backslash and
	// keeps the character.
	return s[j : j+w], 1 + w, true
}

// unicodeStep decodes \uXXXX, expecting exactly four hexadecimal digits.
// A high surrogate unit combines with an immediately following low
// surrogate escape; an unpairable surrogate decodes to U+FFFD.
func unicodeStep(s string, i int, atEOF bool) (string, int, bool) {
	if len(s)-(i+2) < 4 && !atEOF {
		return "", 0, false
	}
	u, ok := input.ParseHex4(s, i+2)
	if !ok {
		// Fewer than four hex digits: the backslash is consumed, the
		// 'u' and whatever follows stay literal.
		return "", 1, true
	}
	if !utf16.IsSurrogate(u) {
		return string(u), 6, true
	}
	if u < 0xDC00 {
		// High surrogate: look for the low half in the next escape.
		if len(s)-(i+6) < 6 && !atEOF {
			return "", 0, false
		}
		if i+12 <= len(s) && s[i+6] == '\\' && s[i+7] == 'u' {
			if lo, ok := input.ParseHex4(s, i+8); ok && utf16.IsSurrogate(lo) && lo >= 0xDC00 {
				return string(utf16.DecodeRune(u, lo)), 12, true
			}
		}
	}
	return string(utf8.RuneError), 6, true
}
