// Package parsec implements a parser combinator library.
// It provides a small set of composable building blocks — literal and
// regex primitives, sequence, alternative, repetition, map, bind, label,
// lookahead and commit combinators — from which larger grammars are
// assembled as ordinary Go values. Generics give each parser a precise
// result type while keeping the combinator surface tiny.
//
// Concurrency: a Parser is immutable after construction and may be shared
// between goroutines. Each parse runs synchronously on its own View, which
// is mutated in place and must not be shared between concurrent parses.
package parsec

import (
	"context"
	"log"
	"log/slog"
	"strings"
)

// ============================================================================
// Input view
//

// View is a cursor over an immutable input string. It tracks a byte
// offset together with the 0-based line and column derived from it, and
// supports cheap save/restore of position for backtracking combinators.
//
// A View is mutated in place by the parser that owns it; it must not be
// shared between concurrent parses (see the package doc for the
// concurrency model).
type View struct {
	source string
	idx    int
	line   int
	column int
}

// Snapshot is an opaque, copyable position captured by View.Save and
// restored by View.Load.
type Snapshot struct {
	idx    int
	line   int
	column int
}

// NewView creates a fresh cursor at the start of source.
func NewView(source string) *View {
	return &View{source: source}
}

// Source returns the whole, immutable input string.
func (v *View) Source() string {
	return v.source
}

// Idx returns the current byte offset into Source().
func (v *View) Idx() int {
	return v.idx
}

// Line returns the current 0-based line number.
func (v *View) Line() int {
	return v.line
}

// Column returns the current 0-based column, counted in bytes since the
// last newline.
func (v *View) Column() int {
	return v.column
}

// AtEnd reports whether the cursor has reached the end of the input.
func (v *View) AtEnd() bool {
	return v.idx >= len(v.source)
}

// Remaining returns the number of bytes left to consume.
func (v *View) Remaining() int {
	return len(v.source) - v.idx
}

// Peek returns the next n bytes without advancing the cursor. If
// fewer than n bytes remain, the whole remaining suffix is returned.
func (v *View) Peek(n int) string {
	end := v.idx + n
	if end > len(v.source) || n < 0 {
		end = len(v.source)
	}
	return v.source[v.idx:end]
}

// Rest returns the unconsumed suffix of the input.
func (v *View) Rest() string {
	return v.source[v.idx:]
}

// Save returns an opaque snapshot of the current position.
func (v *View) Save() Snapshot {
	return Snapshot{idx: v.idx, line: v.line, column: v.column}
}

// Load restores a snapshot previously returned by Save.
func (v *View) Load(s Snapshot) {
	v.idx = s.idx
	v.line = s.line
	v.column = s.column
}

// Consume advances the cursor by n bytes, updating line and column
// (each '\n' increments line and resets column), and returns the
// consumed slice. n is clamped to the remaining input.
func (v *View) Consume(n int) string {
	if n < 0 {
		n = 0
	}
	end := v.idx + n
	if end > len(v.source) {
		end = len(v.source)
	}
	text := v.source[v.idx:end]
	v.idx = end

	if lastNl := strings.LastIndexByte(text, '\n'); lastNl >= 0 {
		v.line += strings.Count(text, "\n")
		v.column = len(text) - lastNl - 1
	} else {
		v.column += len(text)
	}

	return text
}

// Pos is the (line, column) pair reported by the CurrentPos primitive and
// by error diagnostics. Both fields are 0-based, matching View.Line/Column.
type Pos struct {
	Line   int
	Column int
}

// ============================================================================
// Debug logging
//

// SetDebug sets the process-wide default slog level to Debug if enable is true,
// Info otherwise. Debug logging is off by default and never runs on the
// per-character parsing path; it only fires at ParseText entry/exit and
// at a Defer parser's first evaluation.
func SetDebug(enable bool) {
	if enable {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		return
	}
	slog.SetLogLoggerLevel(slog.LevelInfo)
}

func debugf(msg string, args ...interface{}) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		log.Printf("DEBUG: "+msg, args...)
	}
}
