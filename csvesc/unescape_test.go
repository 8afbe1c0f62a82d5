//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package csvesc_test

import (
	"strings"
	"testing"

	"github.com/unbescape/unbescape-sub001/csvesc"
)

func TestUnescape(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"", ""},
		{"hello", "hello"},
		{`"hello"`, "hello"},
		{`"he said ""hi"""`, `he said "hi"`},
		{`"a,b"`, "a,b"},
		{`""`, ""},
		{`""""`, `"`},
		{"\"line\nbreak\"", "line\nbreak"},
		// A stray quote does not make a quoted field.
		{`"`, `"`},
		{`a"b`, `a"b`},
		{`"unclosed`, `"unclosed`},
		{`unopened"`, `unopened"`},
	}
	for id, tc := range testcases {
		got := csvesc.Unescape(tc.in)
		if got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestUnescapeIdentity(t *testing.T) {
	t.Parallel()
	in := []byte("no quotes at all")
	out := csvesc.UnescapeBytes(in)
	if &out[0] != &in[0] {
		t.Error("expected the input slice back when nothing is quoted")
	}
	if out = csvesc.UnescapeBytes(nil); out != nil {
		t.Errorf("expected nil output for nil input, got %q", out)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"simple",
		`he said "hi"`,
		"a,b,c",
		"field with спец symbols",
		"line\r\nbreak",
		`"`,
		`""`,
	}
	for id, in := range inputs {
		esc := csvesc.Escape(in)
		if got := csvesc.Unescape(esc); got != in {
			t.Errorf("%d: %q escaped to %q, unescaped to %q", id, in, esc, got)
		}
	}
}

func TestUnescapeTo(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	if err := csvesc.UnescapeTo(&sb, `"a""b"`); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := sb.String(); got != `a"b` {
		t.Errorf("expected %q, got %q", `a"b`, got)
	}
}

func TestUnescapeRange(t *testing.T) {
	t.Parallel()
	b := []byte(`xx"a,b"yy`)
	var sb strings.Builder
	if err := csvesc.UnescapeRange(&sb, b, 2, 5); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := sb.String(); got != "a,b" {
		t.Errorf("expected %q, got %q", "a,b", got)
	}
	if err := csvesc.UnescapeRange(&sb, b, -1, 3); err == nil {
		t.Error("expected a range error")
	}
}

func TestUnescapeCopy(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	if err := csvesc.UnescapeCopy(&sb, strings.NewReader(`"x ""y"" z"`)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got, exp := sb.String(), `x "y" z`; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}
