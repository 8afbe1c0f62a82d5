//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package escape

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

// Step decodes at most one escape sequence. It is called with s[i] being the
// grammar's introducer byte and reports:
//
//	repl, n > 0, true:   s[i:i+n] decodes to repl (repl may be empty when
//	                     the grammar consumes the introducer silently);
//	_, 1, false:         s[i] is literal text, no escape applies;
//	_, 0, false:         the sequence may continue beyond the end of s.
//	                     Only returned when atEOF is false; the caller will
//	                     retry with more input.
//
// A Step never fails: malformed sequences resolve to one of the first two
// forms, following each grammar's leniency rule.
type Step func(s string, i int, atEOF bool) (repl string, n int, ok bool)

// Unescape decodes all escape sequences of s using step. The introducer byte
// is the cheap existence check: if it does not occur in s, s itself is
// returned without any scan. The input value is also returned unchanged when
// every occurrence of the introducer turns out to be literal text.
func Unescape(s string, intro byte, step Step) string {
	i := strings.IndexByte(s, intro)
	if i < 0 {
		return s
	}
	var b strings.Builder
	last, dirty := 0, false
	for ; i < len(s); i++ {
		if s[i] != intro {
			continue
		}
		repl, n, ok := step(s, i, true)
		if !ok {
			continue
		}
		if !dirty {
			b.Grow(len(s))
			dirty = true
		}
		b.WriteString(s[last:i])
		b.WriteString(repl)
		i += n - 1
		last = i + 1
	}
	if !dirty {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// UnescapeBytes is Unescape for byte slices: nil in, nil out; the input
// slice itself is returned when nothing decodes.
func UnescapeBytes(b []byte, intro byte, step Step) []byte {
	if bytes.IndexByte(b, intro) < 0 {
		return b
	}
	s := Unescape(string(b), intro, step)
	return []byte(s)
}

// UnescapeText decodes all escape sequences of s using step and writes the
// result to w. Nothing is written for an empty s.
func UnescapeText(w io.Writer, s string, intro byte, step Step) error {
	ew := NewWriter(w)
	last := 0
	for i := strings.IndexByte(s, intro); i >= 0 && i < len(s); i++ {
		if s[i] != intro {
			continue
		}
		repl, n, ok := step(s, i, true)
		if !ok {
			continue
		}
		ew.WriteString(s[last:i])
		ew.WriteString(repl)
		i += n - 1
		last = i + 1
	}
	ew.WriteString(s[last:])
	return ew.Err()
}

// UnescapeRange decodes the bytes b[offset:offset+length], writing the
// result to w. The offset/length pair is validated before any scanning
// starts; a violation yields ErrRange and no output.
func UnescapeRange(w io.Writer, b []byte, offset, length int, intro byte, step Step) error {
	if err := checkRange(len(b), offset, length); err != nil {
		return err
	}
	b = b[offset : offset+length]
	if bytes.IndexByte(b, intro) < 0 {
		ew := NewWriter(w)
		ew.Write(b)
		return ew.Err()
	}
	return UnescapeText(w, string(b), intro, step)
}

// UnescapeCopy decodes everything read from r using step and writes the
// result to w. Escape sequences split across read boundaries are reassembled
// before decoding.
func UnescapeCopy(w io.Writer, r io.Reader, intro byte, step Step) error {
	_, err := io.Copy(w, transform.NewReader(r, Untransformer(intro, step)))
	return err
}
