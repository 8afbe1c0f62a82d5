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

import "unicode/utf16"

// nonASCII is the classification slot for every codepoint beyond the indexed
// part of the level table.
const nonASCII = 0x80

const hexDigits = "0123456789ABCDEF"

// symbols holds the classification data of one .properties escape grammar.
// Both instances are built once below and never written again.
type symbols struct {
	levels [nonASCII + 1]byte
	sec    [nonASCII]byte // single-escape characters: '\t' -> 't'
}

func (sym *symbols) level(r rune) byte {
	if r < nonASCII {
		return sym.levels[r]
	}
	return sym.levels[nonASCII]
}

// newSymbols builds the level table. Keys escape the separator characters
// (space, colon, equals) that values may contain literally.
func newSymbols(key bool) *symbols {
	sym := &symbols{}
	for i := range sym.levels {
		sym.levels[i] = 3
	}
	sym.levels[nonASCII] = 2
	for c := 'A'; c <= 'Z'; c++ {
		sym.levels[c] = 4
	}
	for c := 'a'; c <= 'z'; c++ {
		sym.levels[c] = 4
	}
	for c := '0'; c <= '9'; c++ {
		sym.levels[c] = 4
	}
	for c := 0x00; c <= 0x1F; c++ {
		sym.levels[c] = 1
	}
	sym.levels[0x7F] = 1
	sym.levels['\\'] = 1
	sym.sec['\t'], sym.sec['\n'], sym.sec['\f'], sym.sec['\r'] = 't', 'n', 'f', 'r'
	sym.sec['\\'] = '\\'
	if key {
		sym.levels[' '], sym.levels[':'], sym.levels['='] = 1, 1, 1
		sym.sec[' '], sym.sec[':'], sym.sec['='] = ' ', ':', '='
	}
	return sym
}

var (
	keySymbols   = newSymbols(true)
	valueSymbols = newSymbols(false)
)

// appendEscape encodes one escaped codepoint: a single escape where the type
// allows one and the grammar defines one, otherwise \uXXXX over the UTF-16
// units of the codepoint.
func (sym *symbols) appendEscape(dst []byte, r rune, typ Type) []byte {
	if typ == SingleEscapeUnicodeHexa && r < nonASCII && sym.sec[r] != 0 {
		return append(dst, '\\', sym.sec[r])
	}
	if r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		return appendUnit(appendUnit(dst, hi), lo)
	}
	return appendUnit(dst, r)
}

func appendUnit(dst []byte, u rune) []byte {
	return append(dst, '\\', 'u',
		hexDigits[u>>12&0xF], hexDigits[u>>8&0xF], hexDigits[u>>4&0xF], hexDigits[u&0xF])
}
