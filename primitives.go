package parsec

import (
	"fmt"
	"regexp"
)

// ============================================================================
// Primitives (spec.md §4.1)
//

// Lit matches the exact literal s. On a match it consumes len(s)
// bytes and succeeds with the matched slice. On a mismatch it fails
// without consuming, expecting a quoted s. The empty string always
// succeeds, zero-width.
func Lit(s string) Parser[string] {
	expected := NewExpectedSet(fmt.Sprintf("%q", s))
	return New(func(v *View) Outcome[string] {
		if v.Peek(len(s)) != s {
			return Fail[string](false, expected)
		}
		return Succeed(v.Consume(len(s)), len(s) > 0)
	})
}

// Match is the result of a successful Regex parse: the whole matched text
// plus any capture groups, mirroring Go's regexp.FindStringSubmatch.
type Match struct {
	Text   string
	Groups []string
}

// Group returns the i-th capture group (1-based, as in regexp), or "" if
// it didn't participate in the match or is out of range.
func (m Match) Group(i int) string {
	if i < 1 || i > len(m.Groups) {
		return ""
	}
	return m.Groups[i-1]
}

// Regex attempts an anchored match of pattern against the unconsumed
// suffix of the view. On match it consumes the matched text and succeeds
// with a Match carrying the full text and capture groups. On mismatch it
// fails without consuming, expecting "text matching <pattern>". The
// pattern is compiled once, at construction time, and matched only
// against the remaining suffix — callers must not rely on "^"/"$" having
// any meaning beyond that suffix.
//
// Regex panics if pattern fails to compile; grammars are built once at
// program startup, so a bad pattern is a programming error, not a
// runtime condition to recover from.
func Regex(pattern string) Parser[Match] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	expected := NewExpectedSet(fmt.Sprintf("text matching %q", pattern))
	return New(func(v *View) Outcome[Match] {
		loc := re.FindStringSubmatchIndex(v.Rest())
		if loc == nil {
			return Fail[Match](false, expected)
		}
		text := v.Consume(loc[1])
		groups := make([]string, 0, len(loc)/2-1)
		for i := 2; i < len(loc); i += 2 {
			if loc[i] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, text[loc[i]-loc[0]:loc[i+1]-loc[0]])
		}
		return Succeed(Match{Text: text, Groups: groups}, len(text) > 0)
	})
}

// EOF succeeds zero-width when the view is exhausted, else fails without
// consuming, expecting "EOF".
func EOF() Parser[struct{}] {
	expected := NewExpectedSet("EOF")
	return New(func(v *View) Outcome[struct{}] {
		if v.AtEnd() {
			return Succeed(struct{}{}, false)
		}
		return Fail[struct{}](false, expected)
	})
}

// CurrentPos succeeds zero-width with the view's current (line, column),
// without consuming or contributing to any expected-set.
func CurrentPos() Parser[Pos] {
	return New(func(v *View) Outcome[Pos] {
		return Succeed(Pos{Line: v.Line(), Column: v.Column()}, false)
	})
}

// Pure always succeeds zero-width with result val and an empty expected-set.
func Pure[T any](val T) Parser[T] {
	return New(func(*View) Outcome[T] {
		return Succeed(val, false)
	})
}

// Empty always fails zero-width with an empty expected-set. It is the
// identity element for Alt.
func Empty[T any]() Parser[T] {
	return New(func(*View) Outcome[T] {
		return Fail[T](false, NoneExpected)
	})
}
