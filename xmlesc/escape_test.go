//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package xmlesc_test

import (
	"strings"
	"testing"

	"github.com/unbescape/unbescape-sub001/xmlesc"
)

func TestEscapeText(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"", ""},
		{"abc", "abc"},
		{`a<b>"c"`, "a&lt;b&gt;&quot;c&quot;"},
		{"fish & chips", "fish &amp; chips"},
		{"'quoted'", "&apos;quoted&apos;"},
		{"café", "caf&#233;"},
		{"tab\there", "tab\there"},
		{"\U0001F600", "&#128512;"},
		{"a\x00b", "ab"},
		{"a\x01b", "ab"},
		{"a\x7Fb", "a&#127;b"},
	}
	for id, tc := range testcases {
		if got := xmlesc.EscapeText(tc.in); got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestEscapeTextMinimal(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{`a<b>"c"`, "a&lt;b&gt;&quot;c&quot;"},
		{"café", "café"},
		{"tab\there", "tab\there"},
	}
	for id, tc := range testcases {
		if got := xmlesc.EscapeTextMinimal(tc.in); got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestEscapeAttribute(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"a\tb", "a&#9;b"},
		{"a\nb", "a&#10;b"},
		{"a\rb", "a&#13;b"},
		{`say "hi"`, "say &quot;hi&quot;"},
	}
	for id, tc := range testcases {
		if got := xmlesc.EscapeAttributeMinimal(tc.in); got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestEscapeTypes(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		typ xmlesc.Type
		exp string
	}{
		{xmlesc.NamedDecimal, "&lt;caf&#233;"},
		{xmlesc.NamedHexa, "&lt;caf&#xe9;"},
		{xmlesc.Decimal, "&#60;caf&#233;"},
		{xmlesc.Hexa, "&#x3c;caf&#xe9;"},
	}
	for id, tc := range testcases {
		cfg := xmlesc.Config{Version: xmlesc.XML10, Level: xmlesc.Level2, Type: tc.typ}
		got, err := xmlesc.Escape("<café", cfg)
		if err != nil {
			t.Errorf("%d: unexpected error %v", id, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%d: expected %q, got %q", id, tc.exp, got)
		}
	}
}

func TestEscapeLevels(t *testing.T) {
	t.Parallel()
	const in = "a-é<"
	testcases := []struct {
		level xmlesc.Level
		exp   string
	}{
		{xmlesc.Level1, "a-é&lt;"},
		{xmlesc.Level2, "a-&#233;&lt;"},
		{xmlesc.Level3, "a&#45;&#233;&lt;"},
		{xmlesc.Level4, "&#97;&#45;&#233;&lt;"},
	}
	prev := ""
	for id, tc := range testcases {
		cfg := xmlesc.Config{Version: xmlesc.XML10, Level: tc.level, Type: xmlesc.NamedDecimal}
		got, err := xmlesc.Escape(in, cfg)
		if err != nil {
			t.Errorf("%d: unexpected error %v", id, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%d: level %d: expected %q, got %q", id, tc.level, tc.exp, got)
		}
		// Each level escapes a superset of the previous level.
		if strings.Count(got, "&") < strings.Count(prev, "&") {
			t.Errorf("%d: level %d escapes fewer characters than level %d", id, tc.level, tc.level-1)
		}
		prev = got
	}
}

func TestEscapeXML11(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in  string
		exp string
	}{
		{"a\x01b", "a&#1;b"},
		{"a\x00b", "ab"},
		{"a\u0085b", "a\u0085b"},
		{"a\u0086b", "a&#134;b"},
	}
	for id, tc := range testcases {
		cfg := xmlesc.Config{Version: xmlesc.XML11, Level: xmlesc.Level1, Type: xmlesc.Decimal}
		got, err := xmlesc.Escape(tc.in, cfg)
		if err != nil {
			t.Errorf("%d: unexpected error %v", id, err)
			continue
		}
		if got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", id, tc.in, tc.exp, got)
		}
	}
}

func TestEscapeConfigErrors(t *testing.T) {
	t.Parallel()
	testcases := []xmlesc.Config{
		{},
		{Version: xmlesc.XML10, Level: 5, Type: xmlesc.Decimal},
		{Version: xmlesc.XML10, Level: xmlesc.Level1, Type: 99},
		{Version: 7, Level: xmlesc.Level1},
	}
	for id, cfg := range testcases {
		if _, err := xmlesc.Escape("x", cfg); err == nil {
			t.Errorf("%d: expected a configuration error for %+v", id, cfg)
		}
	}
}

func TestEscapeIdentity(t *testing.T) {
	t.Parallel()
	in := []byte("plain ascii text without markup")
	cfg := xmlesc.Config{Version: xmlesc.XML10, Level: xmlesc.Level1, Type: xmlesc.NamedDecimal}
	out, err := xmlesc.EscapeBytes(in, cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if &out[0] != &in[0] {
		t.Error("expected the input slice back for a no-op escape")
	}
	if out, err = xmlesc.EscapeBytes(nil, cfg); err != nil || out != nil {
		t.Errorf("expected nil output for nil input, got (%q,%v)", out, err)
	}
}

func TestEscapeTo(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	cfg := xmlesc.Config{Version: xmlesc.XML10, Level: xmlesc.Level1, Type: xmlesc.NamedDecimal}
	if err := xmlesc.EscapeTo(&sb, "a<b", cfg); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := sb.String(); got != "a&lt;b" {
		t.Errorf("expected %q, got %q", "a&lt;b", got)
	}
}

func TestEscapeCopy(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	cfg := xmlesc.Config{Version: xmlesc.XML10, Level: xmlesc.Level2, Type: xmlesc.NamedDecimal}
	if err := xmlesc.EscapeCopy(&sb, strings.NewReader("x<café \U0001F600"), cfg); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	exp := "x&lt;caf&#233; &#128512;"
	if got := sb.String(); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}
