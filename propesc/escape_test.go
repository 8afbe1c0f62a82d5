//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package propesc_test

import (
	"strings"
	"testing"

	"github.com/unbescape/unbescape-sub001/propesc"
)

func defaultConfig() propesc.Config {
	return propesc.Config{Level: propesc.Level1, Type: propesc.SingleEscapeUnicodeHexa}
}

func TestEscapeKey(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a:b c", `a\:b\ c`},
		{"a=b", `a\=b`},
		{"a\tb", `a\tb`},
		{`back\slash`, `back\\slash`},
		{"multi\nline", `multi\nline`},
		{"key.with.dots", "key.with.dots"},
		{"héllo", "héllo"},
	}
	cfg := defaultConfig()
	for id, tc := range testcases {
		got, err := propesc.EscapeKey(tc.in, cfg)
		if err != nil {
			t.Errorf("%d: unexpected error %v", id, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestEscapeValue(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"", ""},
		{"a:b c", "a:b c"},
		{"a=b", "a=b"},
		{"a\tb", `a\tb`},
		{"line\r\nbreak", `line\r\nbreak`},
		{"form\ffeed", `form\ffeed`},
		{`back\slash`, `back\\slash`},
		{"\x01", `\u0001`},
		{"\x7f", `\u007F`},
	}
	cfg := defaultConfig()
	for id, tc := range testcases {
		got, err := propesc.EscapeValue(tc.in, cfg)
		if err != nil {
			t.Errorf("%d: unexpected error %v", id, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestEscapeTypes(t *testing.T) {
	t.Parallel()
	cfg := propesc.Config{Level: propesc.Level1, Type: propesc.UnicodeHexa}
	got, err := propesc.EscapeValue("a\tb\\c", cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if exp := `a\u0009b\u005Cc`; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestEscapeLevels(t *testing.T) {
	t.Parallel()
	const in = "ab é\t"
	testcases := []struct {
		level propesc.Level
		exp   string
	}{
		{propesc.Level1, "ab é\\t"},
		{propesc.Level2, `ab \u00E9\t`},
		{propesc.Level3, `ab\u0020\u00E9\t`},
		{propesc.Level4, `\u0061\u0062\u0020\u00E9\t`},
	}
	for id, tc := range testcases {
		cfg := propesc.Config{Level: tc.level, Type: propesc.SingleEscapeUnicodeHexa}
		got, err := propesc.EscapeValue(in, cfg)
		if err != nil {
			t.Errorf("%d: unexpected error %v", id, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%d: level %d: expected %q, got %q", id, tc.level, tc.exp, got)
		}
	}
}

func TestEscapeSupplementary(t *testing.T) {
	t.Parallel()
	// Codepoints above the basic multilingual plane escape as a
	// surrogate pair.
	cfg := propesc.Config{Level: propesc.Level2, Type: propesc.SingleEscapeUnicodeHexa}
	got, err := propesc.EscapeValue("a\U0001F600b", cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if exp := `a\uD83D\uDE00b`; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestEscapeConfigErrors(t *testing.T) {
	t.Parallel()
	for id, cfg := range []propesc.Config{
		{},
		{Level: 7, Type: propesc.UnicodeHexa},
		{Level: propesc.Level1, Type: 42},
	} {
		if _, err := propesc.EscapeKey("x", cfg); err == nil {
			t.Errorf("%d: expected a configuration error for %+v", id, cfg)
		}
		if _, err := propesc.EscapeValue("x", cfg); err == nil {
			t.Errorf("%d: expected a configuration error for %+v", id, cfg)
		}
	}
}

func TestEscapeIdentity(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	in := []byte("nothing.to.escape")
	out, err := propesc.EscapeValueBytes(in, cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if &out[0] != &in[0] {
		t.Error("expected the input slice back for a no-op escape")
	}
	if out, err = propesc.EscapeKeyBytes(nil, cfg); err != nil || out != nil {
		t.Errorf("expected nil output for nil input, got (%q,%v)", out, err)
	}
}

func TestEscapeTo(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	if err := propesc.EscapeKeyTo(&sb, "a b", defaultConfig()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := sb.String(); got != `a\ b` {
		t.Errorf("expected %q, got %q", `a\ b`, got)
	}
}

func TestEscapeValueCopy(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	if err := propesc.EscapeValueCopy(&sb, strings.NewReader("a\tb:c"), defaultConfig()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := sb.String(); got != "a\\tb:c" {
		t.Errorf("expected %q, got %q", "a\\tb:c", got)
	}
}
