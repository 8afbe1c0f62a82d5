//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package xmlesc

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/escape"
	"github.com/unbescape/unbescape-sub001/input"
)

// Unescape decodes the predefined entities and numeric character references
// of s. Anything that does not form a complete, valid reference stays
// literal; malformed input never produces an error. If s contains no
// ampersand it is returned without a scan.
func Unescape(s string) string {
	return escape.Unescape(s, '&', step)
}

// UnescapeBytes is Unescape for byte slices: nil in, nil out.
func UnescapeBytes(b []byte) []byte {
	return escape.UnescapeBytes(b, '&', step)
}

// UnescapeTo decodes s and writes the result to w.
func UnescapeTo(w io.Writer, s string) error {
	return escape.UnescapeText(w, s, '&', step)
}

// UnescapeRange decodes b[offset:offset+length] and writes the result to w,
// rejecting an invalid offset/length pair before any scanning.
func UnescapeRange(w io.Writer, b []byte, offset, length int) error {
	return escape.UnescapeRange(w, b, offset, length, '&', step)
}

// UnescapeCopy decodes everything read from r and writes the result to w.
func UnescapeCopy(w io.Writer, r io.Reader) error {
	return escape.UnescapeCopy(w, r, '&', step)
}

// NewUnescaper returns a transform.Transformer decoding a byte stream.
func NewUnescaper() transform.Transformer {
	return escape.Untransformer('&', step)
}

// maxName is the length of the longest predefined entity name.
const maxName = 4

func step(s string, i int, atEOF bool) (string, int, bool) {
	if i+1 >= len(s) {
		if atEOF {
			return "", 1, false
		}
		return "", 0, false
	}
	if s[i+1] == '#' {
		return numericStep(s, i, atEOF)
	}
	return namedStep(s, i, atEOF)
}

func namedStep(s string, i int, atEOF bool) (string, int, bool) {
	j := i + 1
	end := j
	for end < len(s) && end-j <= maxName && isNameByte(s[end]) {
		end++
	}
	if end == len(s) && end-j <= maxName && !atEOF {
		return "", 0, false
	}
	if end == j || end-j > maxName || end == len(s) || s[end] != ';' {
		return "", 1, false
	}
	ref, ok := lookupName(s[j:end])
	if !ok {
		return "", 1, false
	}
	return string(ref.cp), end + 1 - i, true
}

func isNameByte(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// numericStep parses &#nnn; and &#xhh; references. The digits are valued
// one by one; no substring is allocated. Only the lowercase x of the XML
// production introduces a hexadecimal reference.
func numericStep(s string, i int, atEOF bool) (string, int, bool) {
	j := i + 2
	if j >= len(s) {
		if atEOF {
			return "", 1, false
		}
		return "", 0, false
	}
	hexa := false
	if s[j] == 'x' {
		hexa = true
		j++
	}
	start, code := j, 0
	for j < len(s) {
		var d int
		var ok bool
		if hexa {
			d, ok = input.HexDigit(rune(s[j]))
		} else {
			d, ok = input.DecDigit(rune(s[j]))
		}
		if !ok {
			break
		}
		if hexa {
			code = code<<4 | d
		} else {
			code = code*10 + d
		}
		if code > utf8.MaxRune {
			return "", 1, false
		}
		j++
	}
	if j == len(s) && !atEOF {
		return "", 0, false
	}
	if j == start || j == len(s) || s[j] != ';' {
		return "", 1, false
	}
	r := rune(code)
	if r == 0 || (0xD800 <= r && r <= 0xDFFF) {
		// Not a scalar value; leave the reference literal.
		return "", 1, false
	}
	return string(r), j + 1 - i, true
}
