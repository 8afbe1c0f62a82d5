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

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/escape"
)

// Escape escapes s according to cfg. If nothing needs escaping, s itself is
// returned. Codepoints the configured XML version cannot represent are
// removed rather than escaped.
func Escape(s string, cfg Config) (string, error) {
	st, err := cfg.strategy()
	if err != nil {
		return "", err
	}
	return escape.String(s, st), nil
}

// EscapeBytes is Escape for byte slices: nil in, nil out, and the input
// slice itself comes back when nothing needs escaping.
func EscapeBytes(b []byte, cfg Config) ([]byte, error) {
	st, err := cfg.strategy()
	if err != nil {
		return nil, err
	}
	return escape.Bytes(b, st), nil
}

// EscapeTo escapes s according to cfg and writes the result to w. Nothing is
// written for an empty s.
func EscapeTo(w io.Writer, s string, cfg Config) error {
	st, err := cfg.strategy()
	if err != nil {
		return err
	}
	return escape.Text(w, s, st)
}

// EscapeRange escapes b[offset:offset+length] according to cfg and writes
// the result to w, rejecting an invalid offset/length pair before any
// scanning.
func EscapeRange(w io.Writer, b []byte, offset, length int, cfg Config) error {
	st, err := cfg.strategy()
	if err != nil {
		return err
	}
	return escape.Range(w, b, offset, length, st)
}

// EscapeCopy escapes everything read from r according to cfg and writes the
// result to w.
func EscapeCopy(w io.Writer, r io.Reader, cfg Config) error {
	st, err := cfg.strategy()
	if err != nil {
		return err
	}
	return escape.Copy(w, r, st)
}

// NewEscaper returns a transform.Transformer escaping a byte stream
// according to cfg.
func NewEscaper(cfg Config) (transform.Transformer, error) {
	st, err := cfg.strategy()
	if err != nil {
		return nil, err
	}
	return escape.Transformer(st), nil
}

// EscapeText escapes s as XML 1.0 element content, escaping markup
// characters and all non-ASCII codepoints as named or decimal references.
func EscapeText(s string) string {
	s, _ = Escape(s, Config{Version: XML10, Level: Level2, Type: NamedDecimal})
	return s
}

// EscapeTextMinimal is EscapeText restricted to the markup-significant
// characters; non-ASCII text passes through unchanged.
func EscapeTextMinimal(s string) string {
	s, _ = Escape(s, Config{Version: XML10, Level: Level1, Type: NamedDecimal})
	return s
}

// EscapeAttribute escapes s as an XML 1.0 attribute value: like EscapeText
// plus tab, LF and CR, whose literal forms would be normalized away by the
// parser.
func EscapeAttribute(s string) string {
	s, _ = Escape(s, Config{Version: XML10, Attribute: true, Level: Level2, Type: NamedDecimal})
	return s
}

// EscapeAttributeMinimal is EscapeAttribute restricted to level 1.
func EscapeAttributeMinimal(s string) string {
	s, _ = Escape(s, Config{Version: XML10, Attribute: true, Level: Level1, Type: NamedDecimal})
	return s
}
