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
	"io"
	"strings"

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/input"
)

// String escapes s according to st. If no codepoint needs escaping, s itself
// is returned: callers may rely on getting the unmodified input value back
// when the transformation is a no-op.
func String(s string, st *Strategy) string {
	var b strings.Builder
	var seq []byte
	last, pos, dirty := 0, 0, false
	for i := 0; i < len(s); {
		r, w := input.Rune(s, i)
		next := input.At(s, i+w)
		switch st.Decide(r, next, pos) {
		case Pass:
			i += w
			pos++
			continue
		case Escape:
			if !dirty {
				b.Grow(len(s) + 16)
				dirty = true
			}
			b.WriteString(s[last:i])
			seq = st.Encode(seq[:0], r, next)
			b.Write(seq)
		case Drop:
			if !dirty {
				b.Grow(len(s))
				dirty = true
			}
			b.WriteString(s[last:i])
		}
		i += w
		pos++
		last = i
	}
	if !dirty {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// Bytes escapes b according to st. A nil input yields a nil output, and the
// input slice itself is returned when nothing needs escaping.
func Bytes(b []byte, st *Strategy) []byte {
	var out, seq []byte
	last, pos := 0, 0
	for i := 0; i < len(b); {
		r, w := input.RuneBytes(b, i)
		var next rune = input.EOS
		if i+w < len(b) {
			next, _ = input.RuneBytes(b, i+w)
		}
		switch st.Decide(r, next, pos) {
		case Pass:
			i += w
			pos++
			continue
		case Escape:
			if out == nil {
				out = make([]byte, 0, len(b)+16)
			}
			out = append(out, b[last:i]...)
			seq = st.Encode(seq[:0], r, next)
			out = append(out, seq...)
		case Drop:
			if out == nil {
				out = make([]byte, 0, len(b))
			}
			out = append(out, b[last:i]...)
		}
		i += w
		pos++
		last = i
	}
	if out == nil {
		return b
	}
	return append(out, b[last:]...)
}

// Text escapes s according to st, writing the result to w. Nothing is
// written for an empty s.
func Text(w io.Writer, s string, st *Strategy) error {
	ew := NewWriter(w)
	var seq []byte
	last, pos := 0, 0
	for i := 0; i < len(s); {
		r, width := input.Rune(s, i)
		next := input.At(s, i+width)
		a := st.Decide(r, next, pos)
		if a == Pass {
			i += width
			pos++
			continue
		}
		ew.WriteString(s[last:i])
		if a == Escape {
			seq = st.Encode(seq[:0], r, next)
			ew.Write(seq)
		}
		i += width
		pos++
		last = i
	}
	ew.WriteString(s[last:])
	return ew.Err()
}

// Range escapes the bytes b[offset:offset+length] according to st, writing
// the result to w. The offset/length pair is validated before any scanning
// starts; a violation yields ErrRange and no output.
func Range(w io.Writer, b []byte, offset, length int, st *Strategy) error {
	if err := checkRange(len(b), offset, length); err != nil {
		return err
	}
	b = b[offset : offset+length]
	ew := NewWriter(w)
	var seq []byte
	last, pos := 0, 0
	for i := 0; i < len(b); {
		r, width := input.RuneBytes(b, i)
		var next rune = input.EOS
		if i+width < len(b) {
			next, _ = input.RuneBytes(b, i+width)
		}
		a := st.Decide(r, next, pos)
		if a == Pass {
			i += width
			pos++
			continue
		}
		ew.Write(b[last:i])
		if a == Escape {
			seq = st.Encode(seq[:0], r, next)
			ew.Write(seq)
		}
		i += width
		pos++
		last = i
	}
	ew.Write(b[last:])
	return ew.Err()
}

// Copy escapes everything read from r according to st and writes the result
// to w. The source is consumed incrementally; only the bytes of one possibly
// incomplete codepoint plus one codepoint of lookahead are held back at a
// time.
func Copy(w io.Writer, r io.Reader, st *Strategy) error {
	_, err := io.Copy(w, transform.NewReader(r, Transformer(st)))
	return err
}
