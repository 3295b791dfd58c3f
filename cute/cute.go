// Package cute collects terse one-letter aliases for the most common
// parsec primitives, meant to be dot-imported by grammars that use them
// heavily (so `C('{')` reads as a literal, not a qualified call), mirroring
// the teacher library's own `cute` package.
package cute

import "github.com/flowdev/parsec"

// C matches a single literal rune.
func C(r rune) parsec.Parser[string] {
	return parsec.Lit(string(r))
}

// S matches a literal string. Shortened version of parsec.Lit.
func S(token string) parsec.Parser[string] {
	return parsec.Lit(token)
}
