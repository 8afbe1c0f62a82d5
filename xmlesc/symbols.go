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
	"sort"
	"strconv"
	"unicode/utf8"
)

// nonASCII is the classification slot for every codepoint beyond the indexed
// part of the level table.
const nonASCII = 0x80

// symbols holds the per-version, per-mode classification data. All four
// instances are built once below and never written again.
type symbols struct {
	levels   [nonASCII + 1]byte
	valid    func(r rune) bool
	forceCtl bool // XML 1.1: escape 0x7F..0x9F at every level
}

func (sym *symbols) level(r rune) byte {
	if r < nonASCII {
		return sym.levels[r]
	}
	if sym.forceCtl && r <= 0x9F && r != 0x85 {
		// XML 1.1 mandates escaping of the C1 controls, NEL excepted.
		return 1
	}
	return sym.levels[nonASCII]
}

// validXML10 implements the Char production of XML 1.0.
func validXML10(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(0x20 <= r && r <= 0xD7FF) ||
		(0xE000 <= r && r <= 0xFFFD) ||
		(0x10000 <= r && r <= utf8.MaxRune)
}

// validXML11 implements the Char production of XML 1.1, which admits all
// controls except NUL.
func validXML11(r rune) bool {
	return (0x01 <= r && r <= 0xD7FF) ||
		(0xE000 <= r && r <= 0xFFFD) ||
		(0x10000 <= r && r <= utf8.MaxRune)
}

// newSymbols fills a level table. The override order matters: later
// assignments win, so the markup and control entries take precedence over
// the alphanumeric default.
func newSymbols(v Version, attribute bool) *symbols {
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
	for _, c := range "<>&\"'" {
		sym.levels[c] = 1
	}
	// Control characters. For XML 1.0 most of them are invalid and will be
	// dropped, but they are still classified at level 1 so that the drop
	// applies regardless of the configured level.
	for c := 0x00; c <= 0x08; c++ {
		sym.levels[c] = 1
	}
	sym.levels[0x0B], sym.levels[0x0C] = 1, 1
	for c := 0x0E; c <= 0x1F; c++ {
		sym.levels[c] = 1
	}
	sym.levels[0x7F] = 1
	if v == XML11 {
		sym.levels[0x00] = 1
		sym.valid = validXML11
		sym.forceCtl = true
	} else {
		sym.valid = validXML10
	}
	if attribute {
		// Defeat attribute-value whitespace normalization.
		sym.levels['\t'], sym.levels['\n'], sym.levels['\r'] = 1, 1, 1
	}
	return sym
}

var (
	text10 = newSymbols(XML10, false)
	attr10 = newSymbols(XML10, true)
	text11 = newSymbols(XML11, false)
	attr11 = newSymbols(XML11, true)
)

func symbolsFor(v Version, attribute bool) *symbols {
	if v == XML11 {
		if attribute {
			return attr11
		}
		return text11
	}
	if attribute {
		return attr10
	}
	return text10
}

// reference is one predefined entity.
type reference struct {
	name string // name without the & and ; markers
	cp   rune
	text string // full reference text, as emitted
}

// byName is sorted lexicographically by name; byCodepoint indexes into it in
// codepoint order. Both orders support binary search.
var byName = [...]reference{
	{"amp", '&', "&amp;"},
	{"apos", '\'', "&apos;"},
	{"gt", '>', "&gt;"},
	{"lt", '<', "&lt;"},
	{"quot", '"', "&quot;"},
}

var byCodepoint = [...]int{4, 0, 1, 3, 2}

// lookupCodepoint returns the predefined entity for r, if there is one.
func lookupCodepoint(r rune) (reference, bool) {
	i := sort.Search(len(byCodepoint), func(i int) bool {
		return byName[byCodepoint[i]].cp >= r
	})
	if i < len(byCodepoint) && byName[byCodepoint[i]].cp == r {
		return byName[byCodepoint[i]], true
	}
	return reference{}, false
}

// lookupName returns the predefined entity named name (case-sensitive,
// without markers), if there is one.
func lookupName(name string) (reference, bool) {
	i := sort.Search(len(byName), func(i int) bool {
		return byName[i].name >= name
	})
	if i < len(byName) && byName[i].name == name {
		return byName[i], true
	}
	return reference{}, false
}

func appendReference(dst []byte, r rune, typ Type) []byte {
	if typ == NamedDecimal || typ == NamedHexa {
		if ref, ok := lookupCodepoint(r); ok {
			return append(dst, ref.text...)
		}
	}
	if typ == NamedHexa || typ == Hexa {
		dst = append(dst, "&#x"...)
		dst = strconv.AppendInt(dst, int64(r), 16)
	} else {
		dst = append(dst, "&#"...)
		dst = strconv.AppendInt(dst, int64(r), 10)
	}
	return append(dst, ';')
}
