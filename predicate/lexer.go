// SPDX-License-Identifier: MIT

package predicate

import (
	"fmt"
	"regexp"
	"strings"
)

// tokenKind enumerates the lexical classes produced by the tokenizer.
type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokLT
	tokLTE
	tokGT
	tokGTE
	tokEOF
)

type token struct {
	kind tokenKind
	text string
}

// tokenPattern is the single regex that recognizes every lexeme of the
// inequation grammar: numbers (with optional decimal point), identifiers,
// the two-character comparison operators (checked before their one-character
// prefixes via alternation order), arithmetic operators, and parens.
//
// Numbers require at least one digit after a decimal point (e.g. "1.5" is a
// number, but the bare "1." in "1.x" is not — it is left unconsumed for the
// tokenizer to reject as a malformed number.
var tokenPattern = regexp.MustCompile(`\s*(<=|>=|<|>|[0-9]+(\.[0-9]+)?|[A-Za-z_][A-Za-z0-9_]*|\+|-|\*|/|\(|\))`)

// tokenize splits s into a token stream. It fails with ErrParse if any
// non-whitespace character is left unconsumed by the pattern (e.g. a stray
// symbol, or a malformed number like "1.x").
func tokenize(s string) ([]token, error) {
	var toks []token
	rest := s
	consumed := 0
	for len(strings.TrimSpace(rest)) > 0 {
		loc := tokenPattern.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return nil, fmt.Errorf("predicate: cannot tokenize %q at offset %d: %w", s, consumed, ErrParse)
		}
		whole := rest[loc[0]:loc[1]]
		text := rest[loc[2]:loc[3]]
		toks = append(toks, token{kind: classify(text), text: text})
		consumed += len(whole)
		rest = rest[loc[1]:]
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

func classify(text string) tokenKind {
	switch text {
	case "+":
		return tokPlus
	case "-":
		return tokMinus
	case "*":
		return tokStar
	case "/":
		return tokSlash
	case "(":
		return tokLParen
	case ")":
		return tokRParen
	case "<":
		return tokLT
	case "<=":
		return tokLTE
	case ">":
		return tokGT
	case ">=":
		return tokGTE
	}
	if text[0] >= '0' && text[0] <= '9' {
		return tokNumber
	}
	return tokIdent
}

func isComparison(k tokenKind) bool {
	return k == tokLT || k == tokLTE || k == tokGT || k == tokGTE
}
