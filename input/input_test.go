//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package input_test

import (
	"testing"

	"github.com/unbescape/unbescape-sub001/input"
)

func TestRune(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		i    int
		exp  rune
		expW int
	}{
		{"a", 0, 'a', 1},
		{"ab", 1, 'b', 1},
		{"ä", 0, 'ä', 2},
		{"aä", 1, 'ä', 2},
		{"€", 0, '€', 3},
		{"\U0001F600", 0, 0x1F600, 4},
		{"\xc0", 0, '\uFFFD', 1},
	}
	for id, tc := range testcases {
		got, w := input.Rune(tc.text, tc.i)
		if got != tc.exp || w != tc.expW {
			t.Errorf("%d/%q: expected (%q,%d), got (%q,%d)", id, tc.text, tc.exp, tc.expW, got, w)
		}
		gotB, wB := input.RuneBytes([]byte(tc.text), tc.i)
		if gotB != tc.exp || wB != tc.expW {
			t.Errorf("%d/%q: bytes: expected (%q,%d), got (%q,%d)", id, tc.text, tc.exp, tc.expW, gotB, wB)
		}
	}
}

func TestAt(t *testing.T) {
	t.Parallel()
	if got := input.At("ab", 1); got != 'b' {
		t.Errorf("expected 'b', got %q", got)
	}
	if got := input.At("ab", 2); got != input.EOS {
		t.Errorf("expected EOS, got %q", got)
	}
	if got := input.At("", 0); got != input.EOS {
		t.Errorf("expected EOS on empty input, got %q", got)
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		ch     rune
		hex    int
		hexOK  bool
		dec    int
		decOK  bool
	}{
		{'0', 0, true, 0, true},
		{'9', 9, true, 9, true},
		{'a', 10, true, 0, false},
		{'f', 15, true, 0, false},
		{'A', 10, true, 0, false},
		{'F', 15, true, 0, false},
		{'g', 0, false, 0, false},
		{'G', 0, false, 0, false},
		{' ', 0, false, 0, false},
	}
	for id, tc := range testcases {
		h, hOK := input.HexDigit(tc.ch)
		if h != tc.hex || hOK != tc.hexOK {
			t.Errorf("%d/%q: hex: expected (%d,%v), got (%d,%v)", id, tc.ch, tc.hex, tc.hexOK, h, hOK)
		}
		d, dOK := input.DecDigit(tc.ch)
		if d != tc.dec || dOK != tc.decOK {
			t.Errorf("%d/%q: dec: expected (%d,%v), got (%d,%v)", id, tc.ch, tc.dec, tc.decOK, d, dOK)
		}
		if input.IsHexDigit(tc.ch) != tc.hexOK {
			t.Errorf("%d/%q: IsHexDigit mismatch", id, tc.ch)
		}
		if input.IsDecDigit(tc.ch) != tc.decOK {
			t.Errorf("%d/%q: IsDecDigit mismatch", id, tc.ch)
		}
	}
}

func TestParseHex4(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		i    int
		exp  rune
		ok   bool
	}{
		{"0041", 0, 0x41, true},
		{"FFFD", 0, 0xFFFD, true},
		{"x00e9", 1, 0xE9, true},
		{"D83D", 0, 0xD83D, true},
		{"004", 0, 0, false},
		{"00 4", 0, 0, false},
		{"ZZZZ", 0, 0, false},
		{"", 0, 0, false},
	}
	for id, tc := range testcases {
		got, ok := input.ParseHex4(tc.text, tc.i)
		if got != tc.exp || ok != tc.ok {
			t.Errorf("%d/%q: expected (%#x,%v), got (%#x,%v)", id, tc.text, tc.exp, tc.ok, got, ok)
		}
	}
}
