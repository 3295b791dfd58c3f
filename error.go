package parsec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ============================================================================
// Error rendering (spec.md §4.12)
//

// ParserError is the diagnostic produced when a top-level parse fails. It
// carries the failure position (as both a byte offset and line/column)
// and the set of tokens the grammar would have accepted there, and
// renders itself as the multi-line diagnostic specified by spec.md §4.12.
type ParserError struct {
	Pos      Pos
	Idx      int
	Expected ExpectedSet
	srcLine  string
	nextRune string
	atEOF    bool
}

func (e *ParserError) Error() string {
	return renderDiagnostic(*e)
}

// newParserError builds a ParserError from a failed outcome's view
// position and expected-set.
func newParserError(v *View, expected ExpectedSet) *ParserError {
	line := currentSourceLine(v.Source(), v.Idx())
	next, atEOF := nextToken(v)
	return &ParserError{
		Pos:      Pos{Line: v.Line(), Column: v.Column()},
		Idx:      v.Idx(),
		Expected: expected,
		srcLine:  line,
		nextRune: next,
		atEOF:    atEOF,
	}
}

// currentSourceLine returns the line of source containing byte offset idx,
// without the trailing newline.
func currentSourceLine(source string, idx int) string {
	start := strings.LastIndexByte(source[:idx], '\n') + 1
	end := strings.IndexByte(source[idx:], '\n')
	if end < 0 {
		return source[start:]
	}
	return source[start : idx+end]
}

// nextToken returns a short, printable description of the character at
// the cursor (or reports EOF).
func nextToken(v *View) (string, bool) {
	if v.AtEnd() {
		return "", true
	}
	_, size := utf8.DecodeRuneInString(v.Rest())
	return v.Peek(size), false
}

// renderDiagnostic formats e as:
//
//	<line+1>:<column+1>:
//	     |
//	  <line+1> | <source line containing column>
//	     |     <column spaces>^
//	unexpected "<next char>"   (or: unexpected EOF)
//	expected <English list of expected set>
func renderDiagnostic(e ParserError) string {
	lineNo := fmt.Sprintf("%d", e.Pos.Line+1)
	gutter := strings.Repeat(" ", len(lineNo)) + " | "

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:\n", e.Pos.Line+1, e.Pos.Column+1)
	b.WriteString(gutter)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s | %s\n", lineNo, e.srcLine)
	b.WriteString(gutter)
	b.WriteString(strings.Repeat(" ", e.Pos.Column))
	b.WriteString("^\n")

	if e.atEOF {
		b.WriteString("unexpected EOF\n")
	} else {
		fmt.Fprintf(&b, "unexpected %q\n", e.nextRune)
	}

	if e.Expected.Empty() {
		b.WriteString("expected (nothing more specific known)")
	} else {
		fmt.Fprintf(&b, "expected %s", englishList(e.Expected.Items()))
	}

	return b.String()
}

// englishList joins items with commas and a final "or": one item is
// returned bare, two are joined with " or " and no comma, three or more
// get an Oxford-less comma list before the final "or".
func englishList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
