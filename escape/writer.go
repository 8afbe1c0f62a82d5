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
	"unicode/utf8"
)

// Writer is the append-only sink used by the engine: it forwards to an
// io.Writer and collects the first error so that scan loops need no error
// check per write.
type Writer struct {
	w    io.Writer // The io.Writer to write to
	err  error     // Collect error
	rbuf [utf8.UTFMax]byte
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) Writer {
	return Writer{w: w}
}

// Write writes the content of p.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var l int
	l, w.err = w.w.Write(p)
	return l, w.err
}

// WriteString writes the content of s.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// WriteByte writes the single byte b.
func (w *Writer) WriteByte(b byte) error {
	w.rbuf[0] = b
	_, err := w.Write(w.rbuf[:1])
	return err
}

// WriteRune writes the encoding of r.
func (w *Writer) WriteRune(r rune) {
	n := utf8.EncodeRune(w.rbuf[:], r)
	w.Write(w.rbuf[:n])
}

// Err returns the collected error.
func (w *Writer) Err() error { return w.err }
