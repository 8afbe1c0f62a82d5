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
	"strconv"

	"github.com/unbescape/unbescape-sub001/input"
)

// nonASCII is the classification slot for every codepoint beyond the indexed
// part of the level table.
const nonASCII = 0x80

// symbols holds the classification data of one CSS escape grammar. Both
// instances are built once below and never written again.
type symbols struct {
	levels    [nonASCII + 1]byte
	backslash [nonASCII]bool // characters escapable as \c
}

func (sym *symbols) level(r rune) byte {
	if r < nonASCII {
		return sym.levels[r]
	}
	return sym.levels[nonASCII]
}

func isASCIIAlnum(c rune) bool {
	return ('0' <= c && c <= '9') || ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// isWhite matches the white space set of the CSS syntax: these characters
// delimit (and are absorbed after) a hexadecimal escape.
func isWhite(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// newIdentifierSymbols builds the identifier table: all ASCII punctuation and
// all controls at level 1, alphanumerics at 4, non-ASCII at 2. Hyphen and
// underscore are valid identifier characters; their leading-position rules
// live in the strategy, so here they classify like alphanumerics. The colon
// is significant but deliberately has no backslash escape (\: confuses
// legacy parsers), so it always encodes as a hexadecimal escape.
func newIdentifierSymbols() *symbols {
	sym := &symbols{}
	for i := range sym.levels {
		sym.levels[i] = 3
	}
	sym.levels[nonASCII] = 2
	for c := 0x00; c <= 0x1F; c++ {
		sym.levels[c] = 1
	}
	sym.levels[0x7F] = 1
	for c := rune(0x20); c <= 0x7E; c++ {
		if isASCIIAlnum(c) {
			sym.levels[c] = 4
			continue
		}
		sym.levels[c] = 1
		if c != ':' {
			sym.backslash[c] = true
		}
	}
	sym.levels['-'], sym.levels['_'] = 4, 4
	return sym
}

// newStringSymbols builds the string-literal table: only the quotes, the
// backslash and the controls are significant at level 1.
func newStringSymbols() *symbols {
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
	for _, c := range "\"'\\" {
		sym.levels[c] = 1
		sym.backslash[c] = true
	}
	return sym
}

var (
	identifierSymbols = newIdentifierSymbols()
	stringSymbols     = newStringSymbols()
)

// appendEscape encodes one escaped codepoint. next decides whether a
// delimiting space must follow a hexadecimal escape: without it, a following
// hexadecimal digit would be absorbed into the escape on re-scan, and a
// following white space character would be absorbed as the delimiter itself.
func (sym *symbols) appendEscape(dst []byte, r, next rune, typ Type) []byte {
	if typ == BackslashCompactHexa || typ == BackslashSixDigitHexa {
		if r < nonASCII && sym.backslash[r] {
			return append(dst, '\\', byte(r))
		}
	}
	if typ == BackslashSixDigitHexa || typ == SixDigitHexa {
		dst = append(dst, '\\')
		hex := strconv.FormatInt(int64(r), 16)
		for i := len(hex); i < 6; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, hex...)
		if isWhite(next) {
			dst = append(dst, ' ')
		}
		return dst
	}
	dst = append(dst, '\\')
	dst = strconv.AppendInt(dst, int64(r), 16)
	if input.IsHexDigit(next) || isWhite(next) {
		dst = append(dst, ' ')
	}
	return dst
}
