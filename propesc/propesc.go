//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package propesc escapes and unescapes Java .properties keys and values.
// Keys additionally escape the space, colon and equals characters that would
// otherwise terminate the key. Codepoints without a single escape form are
// encoded as \uXXXX over their UTF-16 representation, so supplementary
// codepoints become two consecutive escapes.
package propesc

import (
	"fmt"

	"github.com/unbescape/unbescape-sub001/escape"
)

// Type selects how a codepoint chosen for escaping is encoded.
type Type int

// Escape types.
const (
	SingleEscapeUnicodeHexa Type = iota // \t, \n, ... with \uXXXX fallback
	UnicodeHexa                         // \uXXXX only
)

// Level configures how aggressively text is escaped. Each level escapes a
// superset of the previous one.
type Level int

// Escape levels.
const (
	Level1 Level = iota + 1 // grammar-significant characters and controls
	Level2                  // plus all non-ASCII
	Level3                  // plus all non-alphanumeric ASCII
	Level4                  // everything
)

// Config is the immutable escape configuration. Unescaping takes no
// configuration.
type Config struct {
	Level Level
	Type  Type
}

// Valid reports whether the configuration is usable.
func (cfg Config) Valid() error {
	if cfg.Level < Level1 || cfg.Level > Level4 {
		return fmt.Errorf("propesc: invalid escape level %d", cfg.Level)
	}
	if cfg.Type != SingleEscapeUnicodeHexa && cfg.Type != UnicodeHexa {
		return fmt.Errorf("propesc: unknown escape type %d", cfg.Type)
	}
	return nil
}

func (cfg Config) strategy(key bool) (*escape.Strategy, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	sym := valueSymbols
	if key {
		sym = keySymbols
	}
	level, typ := byte(cfg.Level), cfg.Type
	return &escape.Strategy{
		Decide: func(r, _ rune, _ int) escape.Action {
			if level >= sym.level(r) {
				return escape.Escape
			}
			return escape.Pass
		},
		Encode: func(dst []byte, r, _ rune) []byte {
			return sym.appendEscape(dst, r, typ)
		},
	}, nil
}
