//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package csvesc escapes and unescapes single CSV fields per RFC 4180.
// There are no levels or types: a field containing any non-alphanumeric
// character is wrapped in double quotes, with embedded quotes doubled.
// Splitting a record into fields and joining them again is the caller's
// concern.
package csvesc

import (
	"bufio"
	"io"
	"strings"

	"github.com/unbescape/unbescape-sub001/escape"
)

func isAlnum(c byte) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func needsQuoting(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return true
		}
	}
	return false
}

// Escape escapes s as one CSV field. A purely alphanumeric field is
// returned as is; anything else is quoted.
func Escape(s string) string {
	if !needsQuoting(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// EscapeBytes is Escape for byte slices: nil in, nil out, and the input
// slice itself comes back when no quoting is needed.
func EscapeBytes(b []byte) []byte {
	quote := false
	for _, c := range b {
		if !isAlnum(c) {
			quote = true
			break
		}
	}
	if !quote {
		return b
	}
	out := make([]byte, 0, len(b)+2)
	out = append(out, '"')
	for _, c := range b {
		if c == '"' {
			out = append(out, '"')
		}
		out = append(out, c)
	}
	return append(out, '"')
}

// EscapeTo escapes s as one CSV field and writes the result to w. Nothing
// is written for an empty s.
func EscapeTo(w io.Writer, s string) error {
	if len(s) == 0 {
		return nil
	}
	ew := escape.NewWriter(w)
	if !needsQuoting(s) {
		ew.WriteString(s)
		return ew.Err()
	}
	ew.WriteByte('"')
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		ew.WriteString(s[last : i+1])
		ew.WriteByte('"')
		last = i + 1
	}
	ew.WriteString(s[last:])
	ew.WriteByte('"')
	return ew.Err()
}

// EscapeRange escapes b[offset:offset+length] as one CSV field and writes
// the result to w, rejecting an invalid offset/length pair before any
// scanning.
func EscapeRange(w io.Writer, b []byte, offset, length int) error {
	if offset < 0 || offset > len(b) || length < 0 || offset+length > len(b) {
		return escape.ErrRange
	}
	return EscapeTo(w, string(b[offset:offset+length]))
}

// EscapeCopy escapes everything read from r as one CSV field and writes the
// result to w. Input is buffered only until the first non-alphanumeric byte
// settles the quoting decision; after that the field streams through.
func EscapeCopy(w io.Writer, r io.Reader) error {
	br := bufio.NewReader(r)
	ew := escape.NewWriter(w)
	var held []byte
	quoted := false
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if !quoted {
			if isAlnum(c) {
				held = append(held, c)
				continue
			}
			quoted = true
			ew.WriteByte('"')
			ew.Write(held)
			held = nil
		}
		if c == '"' {
			ew.WriteByte('"')
		}
		ew.WriteByte(c)
	}
	if quoted {
		ew.WriteByte('"')
	} else {
		ew.Write(held)
	}
	return ew.Err()
}
