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

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/escape"
)

// EscapeIdentifier escapes s for use as a CSS identifier. If nothing needs
// escaping, s itself is returned. The leading-position rules (digit, hyphen,
// underscore) apply at every level.
func EscapeIdentifier(s string, cfg Config) (string, error) {
	st, err := cfg.strategy(true)
	if err != nil {
		return "", err
	}
	return escape.String(s, st), nil
}

// EscapeIdentifierBytes is EscapeIdentifier for byte slices: nil in, nil
// out, and the input slice itself comes back when nothing needs escaping.
func EscapeIdentifierBytes(b []byte, cfg Config) ([]byte, error) {
	st, err := cfg.strategy(true)
	if err != nil {
		return nil, err
	}
	return escape.Bytes(b, st), nil
}

// EscapeIdentifierTo escapes s as a CSS identifier and writes the result to
// w. Nothing is written for an empty s.
func EscapeIdentifierTo(w io.Writer, s string, cfg Config) error {
	st, err := cfg.strategy(true)
	if err != nil {
		return err
	}
	return escape.Text(w, s, st)
}

// EscapeIdentifierRange escapes b[offset:offset+length] as a CSS identifier
// and writes the result to w, rejecting an invalid offset/length pair before
// any scanning.
func EscapeIdentifierRange(w io.Writer, b []byte, offset, length int, cfg Config) error {
	st, err := cfg.strategy(true)
	if err != nil {
		return err
	}
	return escape.Range(w, b, offset, length, st)
}

// EscapeIdentifierCopy escapes everything read from r as a CSS identifier
// and writes the result to w.
func EscapeIdentifierCopy(w io.Writer, r io.Reader, cfg Config) error {
	st, err := cfg.strategy(true)
	if err != nil {
		return err
	}
	return escape.Copy(w, r, st)
}

// NewIdentifierEscaper returns a transform.Transformer escaping a byte
// stream as a CSS identifier.
func NewIdentifierEscaper(cfg Config) (transform.Transformer, error) {
	st, err := cfg.strategy(true)
	if err != nil {
		return nil, err
	}
	return escape.Transformer(st), nil
}

// EscapeString escapes s for use inside a CSS string literal. If nothing
// needs escaping, s itself is returned.
func EscapeString(s string, cfg Config) (string, error) {
	st, err := cfg.strategy(false)
	if err != nil {
		return "", err
	}
	return escape.String(s, st), nil
}

// EscapeStringBytes is EscapeString for byte slices: nil in, nil out.
func EscapeStringBytes(b []byte, cfg Config) ([]byte, error) {
	st, err := cfg.strategy(false)
	if err != nil {
		return nil, err
	}
	return escape.Bytes(b, st), nil
}

// EscapeStringTo escapes s as CSS string content and writes the result to w.
func EscapeStringTo(w io.Writer, s string, cfg Config) error {
	st, err := cfg.strategy(false)
	if err != nil {
		return err
	}
	return escape.Text(w, s, st)
}

// EscapeStringRange escapes b[offset:offset+length] as CSS string content
// and writes the result to w, rejecting an invalid offset/length pair before
// any scanning.
func EscapeStringRange(w io.Writer, b []byte, offset, length int, cfg Config) error {
	st, err := cfg.strategy(false)
	if err != nil {
		return err
	}
	return escape.Range(w, b, offset, length, st)
}

// EscapeStringCopy escapes everything read from r as CSS string content and
// writes the result to w.
func EscapeStringCopy(w io.Writer, r io.Reader, cfg Config) error {
	st, err := cfg.strategy(false)
	if err != nil {
		return err
	}
	return escape.Copy(w, r, st)
}

// NewStringEscaper returns a transform.Transformer escaping a byte stream as
// CSS string content.
func NewStringEscaper(cfg Config) (transform.Transformer, error) {
	st, err := cfg.strategy(false)
	if err != nil {
		return nil, err
	}
	return escape.Transformer(st), nil
}
