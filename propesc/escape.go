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

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/escape"
)

// EscapeKey escapes s for use as a .properties key. If nothing needs
// escaping, s itself is returned.
func EscapeKey(s string, cfg Config) (string, error) {
	st, err := cfg.strategy(true)
	if err != nil {
		return "", err
	}
	return escape.String(s, st), nil
}

// EscapeKeyBytes is EscapeKey for byte slices: nil in, nil out, and the
// input slice itself comes back when nothing needs escaping.
func EscapeKeyBytes(b []byte, cfg Config) ([]byte, error) {
	st, err := cfg.strategy(true)
	if err != nil {
		return nil, err
	}
	return escape.Bytes(b, st), nil
}

// EscapeKeyTo escapes s as a .properties key and writes the result to w.
// Nothing is written for an empty s.
func EscapeKeyTo(w io.Writer, s string, cfg Config) error {
	st, err := cfg.strategy(true)
	if err != nil {
		return err
	}
	return escape.Text(w, s, st)
}

// EscapeKeyRange escapes b[offset:offset+length] as a .properties key and
// writes the result to w, rejecting an invalid offset/length pair before any
// scanning.
func EscapeKeyRange(w io.Writer, b []byte, offset, length int, cfg Config) error {
	st, err := cfg.strategy(true)
	if err != nil {
		return err
	}
	return escape.Range(w, b, offset, length, st)
}

// EscapeKeyCopy escapes everything read from r as a .properties key and
// writes the result to w.
func EscapeKeyCopy(w io.Writer, r io.Reader, cfg Config) error {
	st, err := cfg.strategy(true)
	if err != nil {
		return err
	}
	return escape.Copy(w, r, st)
}

// NewKeyEscaper returns a transform.Transformer escaping a byte stream as a
// .properties key.
func NewKeyEscaper(cfg Config) (transform.Transformer, error) {
	st, err := cfg.strategy(true)
	if err != nil {
		return nil, err
	}
	return escape.Transformer(st), nil
}

// EscapeValue escapes s for use as a .properties value. If nothing needs
// escaping, s itself is returned.
func EscapeValue(s string, cfg Config) (string, error) {
	st, err := cfg.strategy(false)
	if err != nil {
		return "", err
	}
	return escape.String(s, st), nil
}

// EscapeValueBytes is EscapeValue for byte slices: nil in, nil out.
func EscapeValueBytes(b []byte, cfg Config) ([]byte, error) {
	st, err := cfg.strategy(false)
	if err != nil {
		return nil, err
	}
	return escape.Bytes(b, st), nil
}

// EscapeValueTo escapes s as a .properties value and writes the result to w.
func EscapeValueTo(w io.Writer, s string, cfg Config) error {
	st, err := cfg.strategy(false)
	if err != nil {
		return err
	}
	return escape.Text(w, s, st)
}

// EscapeValueRange escapes b[offset:offset+length] as a .properties value
// and writes the result to w, rejecting an invalid offset/length pair before
// any scanning.
func EscapeValueRange(w io.Writer, b []byte, offset, length int, cfg Config) error {
	st, err := cfg.strategy(false)
	if err != nil {
		return err
	}
	return escape.Range(w, b, offset, length, st)
}

// EscapeValueCopy escapes everything read from r as a .properties value and
// writes the result to w.
func EscapeValueCopy(w io.Writer, r io.Reader, cfg Config) error {
	st, err := cfg.strategy(false)
	if err != nil {
		return err
	}
	return escape.Copy(w, r, st)
}

// NewValueEscaper returns a transform.Transformer escaping a byte stream as
// a .properties value.
func NewValueEscaper(cfg Config) (transform.Transformer, error) {
	st, err := cfg.strategy(false)
	if err != nil {
		return nil, err
	}
	return escape.Transformer(st), nil
}
