//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package escape implements the scanning engine shared by all grammar
// packages. A grammar contributes a Strategy that classifies codepoints and
// encodes escape sequences; this package contributes the scan loop, the
// identity-passthrough contract, the output sink, and the streaming adapters.
package escape

import "errors"

// ErrRange is returned by the bounded entry points when the given
// offset/length pair does not describe a valid range of the input.
var ErrRange = errors.New("escape: offset/length out of range")

// Action is the decision taken for one codepoint of the source.
type Action int

// Valid actions. Drop is used by grammars that silently remove codepoints
// the target grammar cannot represent at all.
const (
	Pass Action = iota
	Escape
	Drop
)

// Strategy describes one grammar configuration to the scanning engine.
//
// Decide is consulted for every codepoint. next is the following codepoint
// (input.EOS at the end of the source) and pos is the rune position, both
// needed by grammars with positional rules. Encode appends the escape
// sequence for r to dst and returns the extended slice; it is called only
// for codepoints that Decide selected for escaping.
type Strategy struct {
	Decide func(r, next rune, pos int) Action
	Encode func(dst []byte, r, next rune) []byte
}

func checkRange(size, offset, length int) error {
	if offset < 0 || offset > size || length < 0 || offset+length > size {
		return ErrRange
	}
	return nil
}
