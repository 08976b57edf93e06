/*
Copyright (C) 2026 the wkt authors.
This file is part of wkt.

wkt is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

wkt is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with wkt.  If not, see <http://www.gnu.org/licenses/>.
*/

package wkt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord
	tokNumber
	tokLParen
	tokRParen
	tokComma
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokWord:
		return "word"
	case tokNumber:
		return "number"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	default:
		return fmt.Sprintf("tokenKind(%d)", int(k))
	}
}

// token is one lexical unit of a WKT string. Word text keeps the
// source casing; keyword matching is the parser's job. Number text is
// the literal with any leading '+' stripped.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// scanner splits a WKT string into tokens on demand. It never
// allocates token text for single-byte delimiters and supports
// one-token lookahead for the parser.
type scanner struct {
	src    string
	off    int
	peeked *token
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// peek returns the next token without consuming it.
func (s *scanner) peek() token {
	if s.peeked == nil {
		t := s.scan()
		s.peeked = &t
	}
	return *s.peeked
}

// next consumes and returns the next token. At end of input it
// returns a tokEOF token; the scanner itself never fails, a malformed
// number literal surfaces when the parser converts it.
func (s *scanner) next() token {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t
	}
	return s.scan()
}

func (s *scanner) scan() token {
	for s.off < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.off:])
		if !unicode.IsSpace(r) {
			break
		}
		s.off += size
	}
	if s.off >= len(s.src) {
		return token{kind: tokEOF, pos: s.off}
	}
	pos := s.off
	c := s.src[s.off]
	switch c {
	case '(':
		s.off++
		return token{kind: tokLParen, text: "(", pos: pos}
	case ')':
		s.off++
		return token{kind: tokRParen, text: ")", pos: pos}
	case ',':
		s.off++
		return token{kind: tokComma, text: ",", pos: pos}
	}
	kind := tokWord
	if isNumberStart(c) {
		// Validity of the literal is decided at parse time.
		kind = tokNumber
	}
	end := s.off
	for end < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[end:])
		if r == '(' || r == ')' || r == ',' || unicode.IsSpace(r) {
			break
		}
		end += size
	}
	text := s.src[s.off:end]
	s.off = end
	if kind == tokNumber {
		text = strings.TrimPrefix(text, "+")
	}
	return token{kind: kind, text: text, pos: pos}
}

func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || c >= '0' && c <= '9'
}
