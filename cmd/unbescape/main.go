//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Command unbescape is a stdin-to-stdout filter around the escaping
// library: it escapes (or, with -u, unescapes) its input for the grammar
// named on the command line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/unbescape/unbescape-sub001/cssesc"
	"github.com/unbescape/unbescape-sub001/csvesc"
	"github.com/unbescape/unbescape-sub001/propesc"
	"github.com/unbescape/unbescape-sub001/xmlesc"
)

var (
	flagUnescape = flag.Bool("u", false, "unescape instead of escape")
	flagLevel    = flag.Int("level", 1, "escape level (1-4)")
	flagType     = flag.String("type", "", "escape type (grammar-specific, empty for default)")
	flagVersion  = flag.String("version", "1.0", "XML version (1.0 or 1.1)")
	flagAttr     = flag.Bool("attr", false, "escape for an XML attribute value")
)

// command runs one grammar in one direction.
type command struct {
	escape   func(w io.Writer, r io.Reader) error
	unescape func(w io.Writer, r io.Reader) error
}

func commands() (map[string]command, error) {
	xmlCfg, err := xmlConfig()
	if err != nil {
		return nil, err
	}
	cssCfg, err := cssConfig()
	if err != nil {
		return nil, err
	}
	propCfg, err := propConfig()
	if err != nil {
		return nil, err
	}
	return map[string]command{
		"xml": {
			escape:   func(w io.Writer, r io.Reader) error { return xmlesc.EscapeCopy(w, r, xmlCfg) },
			unescape: xmlesc.UnescapeCopy,
		},
		"css-ident": {
			escape:   func(w io.Writer, r io.Reader) error { return cssesc.EscapeIdentifierCopy(w, r, cssCfg) },
			unescape: cssesc.UnescapeCopy,
		},
		"css-string": {
			escape:   func(w io.Writer, r io.Reader) error { return cssesc.EscapeStringCopy(w, r, cssCfg) },
			unescape: cssesc.UnescapeCopy,
		},
		"prop-key": {
			escape:   func(w io.Writer, r io.Reader) error { return propesc.EscapeKeyCopy(w, r, propCfg) },
			unescape: propesc.UnescapeCopy,
		},
		"prop-value": {
			escape:   func(w io.Writer, r io.Reader) error { return propesc.EscapeValueCopy(w, r, propCfg) },
			unescape: propesc.UnescapeCopy,
		},
		"csv": {
			escape:   csvesc.EscapeCopy,
			unescape: csvesc.UnescapeCopy,
		},
	}, nil
}

func xmlConfig() (xmlesc.Config, error) {
	cfg := xmlesc.Config{
		Level:     xmlesc.Level(*flagLevel),
		Attribute: *flagAttr,
	}
	switch *flagVersion {
	case "1.0":
		cfg.Version = xmlesc.XML10
	case "1.1":
		cfg.Version = xmlesc.XML11
	default:
		return cfg, fmt.Errorf("unknown XML version %q", *flagVersion)
	}
	switch *flagType {
	case "", "named-decimal":
		cfg.Type = xmlesc.NamedDecimal
	case "named-hexa":
		cfg.Type = xmlesc.NamedHexa
	case "decimal":
		cfg.Type = xmlesc.Decimal
	case "hexa":
		cfg.Type = xmlesc.Hexa
	default:
		return cfg, fmt.Errorf("unknown XML escape type %q", *flagType)
	}
	return cfg, cfg.Valid()
}

func cssConfig() (cssesc.Config, error) {
	cfg := cssesc.Config{Level: cssesc.Level(*flagLevel)}
	switch *flagType {
	case "", "backslash-compact":
		cfg.Type = cssesc.BackslashCompactHexa
	case "backslash-six":
		cfg.Type = cssesc.BackslashSixDigitHexa
	case "compact":
		cfg.Type = cssesc.CompactHexa
	case "six":
		cfg.Type = cssesc.SixDigitHexa
	default:
		return cfg, fmt.Errorf("unknown CSS escape type %q", *flagType)
	}
	return cfg, cfg.Valid()
}

func propConfig() (propesc.Config, error) {
	cfg := propesc.Config{Level: propesc.Level(*flagLevel)}
	switch *flagType {
	case "", "sec":
		cfg.Type = propesc.SingleEscapeUnicodeHexa
	case "uhex":
		cfg.Type = propesc.UnicodeHexa
	default:
		return cfg, fmt.Errorf("unknown properties escape type %q", *flagType)
	}
	return cfg, cfg.Valid()
}

func usage(cmds map[string]command) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(os.Stderr, "usage: unbescape [flags] grammar\ngrammars: %v\n", names)
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	cmds, err := commands()
	if err != nil {
		fmt.Fprintln(os.Stderr, "unbescape:", err)
		os.Exit(2)
	}
	if flag.NArg() != 1 {
		usage(cmds)
		os.Exit(2)
	}
	cmd, ok := cmds[flag.Arg(0)]
	if !ok {
		usage(cmds)
		os.Exit(2)
	}
	run := cmd.escape
	if *flagUnescape {
		run = cmd.unescape
	}
	if err := run(os.Stdout, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "unbescape:", err)
		os.Exit(1)
	}
}
