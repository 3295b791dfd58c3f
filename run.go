package parsec

// ============================================================================
// Top-level parse (spec.md §4.11)
//

// ParseText runs p against a fresh View over source. On success it
// returns the root parser's result. On failure it returns the zero value
// of T and a *ParserError carrying the rendered diagnostic (see
// ParserError.Error).
func ParseText[T any](p Parser[T], source string) (T, error) {
	v := NewView(source)
	debugf("parse_text: starting parse of %d bytes", len(source))
	o := p.Parse(v)
	if o.Succeeded {
		debugf("parse_text: succeeded, consumed %d/%d bytes", v.Idx(), len(source))
		return o.Result, nil
	}
	debugf("parse_text: failed at byte %d", v.Idx())
	var zero T
	return zero, newParserError(v, o.Expected)
}
