// Package pcb contains the convenience builders layered on top of the
// parsec core: lexeme/symbol whitespace handling and separated-list
// helpers (spec.md §4.10). Everything here could be written by a user of
// parsec directly against the core combinators; it is collected here
// because every non-trivial grammar needs it.
package pcb

import "github.com/flowdev/parsec"

// Lexeme strips trailing whitespace (or any other skip-parser ws) after a
// token parser p. It generalizes spec.md's `lexeme_gen(ws)`, which in a
// language without generics would have to be reapplied per result type;
// here it is simply parameterized over both.
func Lexeme[T, W any](p parsec.Parser[T], ws parsec.Parser[W]) parsec.Parser[T] {
	return parsec.SkipAfter(p, ws)
}

// Symbol parses the literal s followed by (and discarding) ws. It
// generalizes spec.md's `symbol_gen(ws)`.
func Symbol[W any](s string, ws parsec.Parser[W]) parsec.Parser[string] {
	return Lexeme(parsec.Lit(s), ws)
}

// SepBy parses zero or more p, separated by sep, with no trailing sep. It
// yields an empty (non-nil) slice if the first p fails without consuming.
func SepBy[T, S any](sep parsec.Parser[S], p parsec.Parser[T]) parsec.Parser[[]T] {
	rest := parsec.ZeroOrMore(parsec.Then(sep, p))
	pair := parsec.Opt(parsec.Seq(p, rest))

	return parsec.Map(pair, func(maybe *parsec.Pair[T, []T]) []T {
		if maybe == nil {
			return []T{}
		}
		out := make([]T, 0, 1+len(maybe.Second))
		out = append(out, maybe.First)
		out = append(out, maybe.Second...)
		return out
	})
}

// SepEndBy is SepBy with an optional trailing separator consumed and
// discarded afterwards. A separator not followed by another p is rewound
// (Commit) so that it ends the list instead of failing it.
func SepEndBy[T, S any](sep parsec.Parser[S], p parsec.Parser[T]) parsec.Parser[[]T] {
	rest := parsec.ZeroOrMore(parsec.Commit(parsec.Then(sep, p)))
	list := parsec.Map(parsec.Opt(parsec.Seq(p, rest)), func(maybe *parsec.Pair[T, []T]) []T {
		if maybe == nil {
			return []T{}
		}
		return append([]T{maybe.First}, maybe.Second...)
	})
	return parsec.SkipAfter(list, parsec.Opt(sep))
}
