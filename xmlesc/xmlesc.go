//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package xmlesc escapes and unescapes text for XML 1.0 and XML 1.1
// documents, covering element content as well as attribute values. Only the
// five predefined entities are known; everything else is encoded as a
// decimal or hexadecimal character reference.
package xmlesc

import (
	"fmt"

	"github.com/unbescape/unbescape-sub001/escape"
)

// Version selects the XML version whose rules apply.
type Version int

// Supported XML versions.
const (
	XML10 Version = iota
	XML11
)

// Type selects how a codepoint chosen for escaping is encoded.
type Type int

// Escape types. The named variants prefer one of the five predefined
// entities and fall back to a numeric character reference.
const (
	NamedDecimal Type = iota // &lt; ... with &#nnn; fallback
	NamedHexa                // &lt; ... with &#xhh; fallback
	Decimal                  // &#nnn; only
	Hexa                     // &#xhh; only
)

// Level configures how aggressively text is escaped. Each level escapes a
// superset of the previous one.
type Level int

// Escape levels.
const (
	Level1 Level = iota + 1 // markup-significant characters and mandated controls
	Level2                  // plus all non-ASCII
	Level3                  // plus all non-alphanumeric ASCII
	Level4                  // everything
)

// Config is the immutable escape configuration. Unescaping takes no
// configuration.
type Config struct {
	Version   Version
	Attribute bool // escape for an attribute value instead of element content
	Level     Level
	Type      Type
}

// Valid reports whether the configuration is usable. Escape entry points
// reject an invalid configuration before scanning anything.
func (cfg Config) Valid() error {
	if cfg.Version != XML10 && cfg.Version != XML11 {
		return fmt.Errorf("xmlesc: unknown version %d", cfg.Version)
	}
	if cfg.Level < Level1 || cfg.Level > Level4 {
		return fmt.Errorf("xmlesc: invalid escape level %d", cfg.Level)
	}
	if cfg.Type < NamedDecimal || cfg.Type > Hexa {
		return fmt.Errorf("xmlesc: unknown escape type %d", cfg.Type)
	}
	return nil
}

func (cfg Config) strategy() (*escape.Strategy, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	sym := symbolsFor(cfg.Version, cfg.Attribute)
	level, typ := byte(cfg.Level), cfg.Type
	return &escape.Strategy{
		Decide: func(r, _ rune, _ int) escape.Action {
			if !sym.valid(r) {
				return escape.Drop
			}
			if level >= sym.level(r) {
				return escape.Escape
			}
			return escape.Pass
		},
		Encode: func(dst []byte, r, _ rune) []byte {
			return appendReference(dst, r, typ)
		},
	}, nil
}
