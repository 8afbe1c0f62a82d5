//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package csvesc

import (
	"io"
	"strings"

	"github.com/unbescape/unbescape-sub001/escape"
)

// Unescape decodes one CSV field: surrounding quotes are stripped when both
// are present, doubled quotes inside become one quote, and a stray single
// quote stays as it is. A field without any quote is returned without a
// scan.
func Unescape(s string) string {
	if strings.IndexByte(s, '"') < 0 {
		return s
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	i := strings.IndexByte(inner, '"')
	if i < 0 {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	last := 0
	for ; i < len(inner); i++ {
		if inner[i] != '"' {
			continue
		}
		b.WriteString(inner[last : i+1])
		if i+1 < len(inner) && inner[i+1] == '"' {
			i++
		}
		last = i + 1
	}
	b.WriteString(inner[last:])
	return b.String()
}

// UnescapeBytes is Unescape for byte slices: nil in, nil out.
func UnescapeBytes(b []byte) []byte {
	s := Unescape(string(b))
	if len(s) == len(b) {
		return b
	}
	return []byte(s)
}

// UnescapeTo decodes s and writes the result to w.
func UnescapeTo(w io.Writer, s string) error {
	ew := escape.NewWriter(w)
	ew.WriteString(Unescape(s))
	return ew.Err()
}

// UnescapeRange decodes b[offset:offset+length] and writes the result to w,
// rejecting an invalid offset/length pair before any scanning.
func UnescapeRange(w io.Writer, b []byte, offset, length int) error {
	if offset < 0 || offset > len(b) || length < 0 || offset+length > len(b) {
		return escape.ErrRange
	}
	return UnescapeTo(w, string(b[offset:offset+length]))
}

// UnescapeCopy decodes everything read from r and writes the result to w.
// Whether the surrounding quotes are balanced is only known at the end of
// the field, so the whole field is read first.
func UnescapeCopy(w io.Writer, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	ew := escape.NewWriter(w)
	ew.Write(UnescapeBytes(b))
	return ew.Err()
}
