//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Unbescape contributors
//
// This file is part of Unbescape.
//
// Unbescape is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package escape

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/unbescape/unbescape-sub001/input"
)

// Transformer returns a transform.Transformer applying st to a byte stream.
// The transformer is stateful (it tracks the rune position for grammars with
// positional rules) and must not be used concurrently; obtain one per
// stream.
func Transformer(st *Strategy) transform.Transformer {
	return &escTransformer{st: st}
}

type escTransformer struct {
	st  *Strategy
	pos int
	seq []byte
}

func (t *escTransformer) Reset() { t.pos = 0 }

func (t *escTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, w := input.RuneBytes(src, nSrc)
		rest := src[nSrc+w:]
		next := input.EOS
		if len(rest) > 0 {
			if !atEOF && !utf8.FullRune(rest) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			next, _ = input.RuneBytes(rest, 0)
		} else if !atEOF {
			// The decision may depend on the codepoint that follows.
			return nDst, nSrc, transform.ErrShortSrc
		}
		switch t.st.Decide(r, next, t.pos) {
		case Pass:
			if nDst+w > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+w])
		case Escape:
			t.seq = t.st.Encode(t.seq[:0], r, next)
			if nDst+len(t.seq) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], t.seq)
		case Drop:
		}
		nSrc += w
		t.pos++
	}
	return nDst, nSrc, nil
}

// Untransformer returns a transform.Transformer decoding a byte stream with
// step. Escape sequences split across chunk boundaries are requested again
// via transform.ErrShortSrc, so a Step sees every sequence in one piece.
func Untransformer(intro byte, step Step) transform.Transformer {
	return &unTransformer{intro: intro, step: step}
}

type unTransformer struct {
	intro byte
	step  Step
}

func (*unTransformer) Reset() {}

func (t *unTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	s := string(src)
	for nSrc < len(s) {
		j := strings.IndexByte(s[nSrc:], t.intro)
		if j < 0 {
			j = len(s) - nSrc
		}
		if j > 0 {
			// Verbatim run up to the next introducer.
			n := copy(dst[nDst:], s[nSrc:nSrc+j])
			nDst += n
			nSrc += n
			if n < j {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}
		repl, n, ok := t.step(s, nSrc, atEOF)
		if !ok {
			if n == 0 {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = t.intro
			nDst++
			nSrc++
			continue
		}
		if nDst+len(repl) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], repl)
		nSrc += n
	}
	return nDst, nSrc, nil
}
