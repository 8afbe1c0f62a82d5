//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cssesc escapes and unescapes CSS identifiers and CSS string
// literals. Escapes are either backslash escapes (\., for the characters the
// grammar allows them on) or hexadecimal escapes in compact (\3c ) or
// six-digit (\00003c) form.
package cssesc

import (
	"fmt"

	"github.com/unbescape/unbescape-sub001/escape"
	"github.com/unbescape/unbescape-sub001/input"
)

// Type selects how a codepoint chosen for escaping is encoded.
type Type int

// Escape types. The backslash variants prefer a single backslash escape and
// fall back to a hexadecimal escape.
const (
	BackslashCompactHexa Type = iota // \. with compact hexadecimal fallback
	BackslashSixDigitHexa
	CompactHexa // hexadecimal escapes only, no leading zeros
	SixDigitHexa
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
		return fmt.Errorf("cssesc: invalid escape level %d", cfg.Level)
	}
	if cfg.Type < BackslashCompactHexa || cfg.Type > SixDigitHexa {
		return fmt.Errorf("cssesc: unknown escape type %d", cfg.Type)
	}
	return nil
}

func (cfg Config) strategy(identifier bool) (*escape.Strategy, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	sym := stringSymbols
	if identifier {
		sym = identifierSymbols
	}
	level, typ := byte(cfg.Level), cfg.Type
	return &escape.Strategy{
		Decide: func(r, next rune, pos int) escape.Action {
			if identifier && pos == 0 {
				// Positional rules of the identifier grammar: a
				// leading digit is never valid, a leading hyphen
				// only when it cannot start a number or a second
				// hyphen, a leading underscore never (old
				// user-agent compatibility).
				switch {
				case input.IsDecDigit(r):
					return escape.Escape
				case r == '-' && (input.IsDecDigit(next) || next == '-'):
					return escape.Escape
				case r == '_':
					return escape.Escape
				}
			}
			if level >= sym.level(r) {
				return escape.Escape
			}
			return escape.Pass
		},
		Encode: func(dst []byte, r, next rune) []byte {
			return sym.appendEscape(dst, r, next, typ)
		},
	}, nil
}
