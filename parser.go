package parsec

import "sync"

// ============================================================================
// Parser
//

// Parser wraps a function from a View to an Outcome. Parsers are
// constructed once per grammar and are immutable after construction, so a
// single Parser value can be reused across any number of parses and
// shared across goroutines as long as each parse owns its own View (see
// the package doc).
type Parser[T any] struct {
	run func(v *View) Outcome[T]
}

// New wraps a raw view-to-outcome function as a Parser. Most callers
// should prefer the primitives and combinators in this package; New is
// the escape hatch for primitives that don't fit the existing set.
func New[T any](run func(v *View) Outcome[T]) Parser[T] {
	return Parser[T]{run: run}
}

// Parse runs p against v, returning its outcome. v is mutated in place:
// its position advances on a consuming success or a consumed failure and
// is otherwise left untouched.
func (p Parser[T]) Parse(v *View) Outcome[T] {
	return p.run(v)
}

// ============================================================================
// Map and bind (§4.6)
//

// Map replaces a successful result with f(result); failures pass through
// unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return New(func(v *View) Outcome[U] {
		o := p.Parse(v)
		if !o.Succeeded {
			return failFrom[T, U](o)
		}
		return withResult(o, f(o.Result))
	})
}

// Bind runs p; on success it calls f with p's result to produce the next
// parser and runs that parser against the (now advanced) view. The
// returned outcome's Consumed is the logical OR of both steps, matching
// Sequence's rule in spec.md §4.4.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return New(func(v *View) Outcome[U] {
		o := p.Parse(v)
		if !o.Succeeded {
			return failFrom[T, U](o)
		}
		next := f(o.Result)
		o2 := next.Parse(v)
		o2.Consumed = o2.Consumed || o.Consumed
		return o2
	})
}

// Set replaces a successful result with the fixed value val.
func Set[T, U any](p Parser[T], val U) Parser[U] {
	return Map(p, func(T) U { return val })
}

// Label replaces p's expected-set with {name} when p fails without
// consuming input; a success or a consumed failure passes through
// unchanged (spec.md §4.7).
func Label[T any](p Parser[T], name string) Parser[T] {
	return New(func(v *View) Outcome[T] {
		o := p.Parse(v)
		if !o.Succeeded && !o.Consumed && !o.Expected.Empty() {
			o.Expected = NewExpectedSet(name)
		}
		return o
	})
}

// ============================================================================
// Alternative (§4.2) and commit point (§4.3)
//

// Alt tries a; if a succeeded, its outcome is returned as-is. If a failed
// having consumed input, that failure is returned unchanged — b is never
// tried (committed-by-default). Only if a failed without consuming is b
// tried, and only then are the two expected-sets unioned.
func Alt[T any](a, b Parser[T]) Parser[T] {
	return New(func(v *View) Outcome[T] {
		oa := a.Parse(v)
		if oa.Succeeded || oa.Consumed {
			return oa
		}
		ob := b.Parse(v)
		if ob.Succeeded || ob.Consumed {
			return ob
		}
		return Fail[T](false, oa.Expected.Union(ob.Expected))
	})
}

// Choice folds Alt over ps left to right. Choice() with no parsers is
// Empty.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Empty[T]()
	}
	p := ps[0]
	for _, next := range ps[1:] {
		p = Alt(p, next)
	}
	return p
}

// Commit runs p. If p failed having consumed input, Commit restores the
// view to its pre-entry position, clears Consumed, and returns the
// failure — the sole supported means of re-enabling backtracking past
// consumption (spec.md §4.3).
func Commit[T any](p Parser[T]) Parser[T] {
	return New(func(v *View) Outcome[T] {
		mark := v.Save()
		o := p.Parse(v)
		if !o.Succeeded && o.Consumed {
			v.Load(mark)
			o.Consumed = false
		}
		return o
	})
}

// TryElse is the `a ^ b` sugar: Alt(Commit(a), b).
func TryElse[T any](a, b Parser[T]) Parser[T] {
	return Alt(Commit(a), b)
}

// ============================================================================
// Sequence (§4.4)
//

// Pair is the result of Seq: the two sub-results in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq runs a, then b. Consumed is the OR of both steps; a's expected-set is
// folded in whenever b failed or b itself still carries expected
// information of its own, matching spec.md §4.4. A clean (expected-empty)
// success of b discards a's leftover expected-set rather than polluting it.
func Seq[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return New(func(v *View) Outcome[Pair[A, B]] {
		oa := a.Parse(v)
		if !oa.Succeeded {
			return failFrom[A, Pair[A, B]](oa)
		}
		ob := b.Parse(v)
		consumed := oa.Consumed || ob.Consumed
		expected := ob.Expected
		if !ob.Succeeded || !ob.Expected.Empty() {
			expected = oa.Expected.Union(ob.Expected)
		}
		if !ob.Succeeded {
			return Outcome[Pair[A, B]]{Succeeded: false, Consumed: consumed, Expected: expected}
		}
		return Outcome[Pair[A, B]]{
			Succeeded: true,
			Consumed:  consumed,
			Result:    Pair[A, B]{First: oa.Result, Second: ob.Result},
			Expected:  expected,
		}
	})
}

// Then is `a >> b`: sequence, keeping only b's result.
func Then[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Seq(a, b), func(p Pair[A, B]) B { return p.Second })
}

// SkipAfter is `a << b`: sequence, keeping only a's result.
func SkipAfter[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Seq(a, b), func(p Pair[A, B]) A { return p.First })
}

// ============================================================================
// Repetition (§4.5)
//

// Many runs p at least lo times and at most hi times (hi < 0 means
// unbounded). The first lo repetitions must all succeed or the whole
// repetition fails with that failure. Beyond lo, a failure that consumed
// no input stops the repetition cleanly (the accumulated results are
// returned); a failure that consumed input aborts the whole repetition
// with that failure, per the Open Question resolution in spec.md §9.
func Many[T any](p Parser[T], lo, hi int) Parser[[]T] {
	return New(func(v *View) Outcome[[]T] {
		results := make([]T, 0, maxInt(lo, 0))
		consumed := false

		for i := 0; i < lo; i++ {
			o := p.Parse(v)
			consumed = consumed || o.Consumed
			if !o.Succeeded {
				return Outcome[[]T]{Succeeded: false, Consumed: consumed, Expected: o.Expected}
			}
			results = append(results, o.Result)
		}

		var lastExpected ExpectedSet
		for hi < 0 || len(results) < hi {
			o := p.Parse(v)
			if !o.Succeeded {
				if o.Consumed {
					return Outcome[[]T]{Succeeded: false, Consumed: true, Expected: o.Expected}
				}
				lastExpected = o.Expected
				break
			}
			consumed = consumed || o.Consumed
			results = append(results, o.Result)
			lastExpected = o.Expected
		}

		return Outcome[[]T]{Succeeded: true, Consumed: consumed, Result: results, Expected: lastExpected}
	})
}

// ZeroOrMore is `p[:]`: Many(p, 0, -1).
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Many(p, 0, -1)
}

// OneOrMore is `p[1:]`: Many(p, 1, -1).
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Many(p, 1, -1)
}

// Exactly is `p[n]`: Many(p, n, n).
func Exactly[T any](p Parser[T], n int) Parser[[]T] {
	return Many(p, n, n)
}

// Opt is `~p`: zero-or-one repetitions, returning a pointer to the single
// result or nil. A consumed failure of p still propagates as a failure;
// only an uncommitted failure is absorbed into the nil/none case.
func Opt[T any](p Parser[T]) Parser[*T] {
	return New(func(v *View) Outcome[*T] {
		o := p.Parse(v)
		if !o.Succeeded {
			if o.Consumed {
				return failFrom[T, *T](o)
			}
			return Outcome[*T]{Succeeded: true, Consumed: false, Result: nil, Expected: o.Expected}
		}
		r := o.Result
		return Outcome[*T]{Succeeded: true, Consumed: o.Consumed, Result: &r, Expected: o.Expected}
	})
}

// ============================================================================
// Lookahead (§4.8)
//

// Lookahead saves the view, runs p, and restores the view regardless of
// outcome. Consumed is always reported as false.
func Lookahead[T any](p Parser[T]) Parser[T] {
	return New(func(v *View) Outcome[T] {
		mark := v.Save()
		o := p.Parse(v)
		v.Load(mark)
		o.Consumed = false
		return o
	})
}

// ============================================================================
// Defer (§4.9)
//

// Defer wraps a thunk producing a parser, evaluated (and memoized) on
// first use. This is the sole supported way to build recursive grammars
// without an initialization-order hazard: a grammar rule that refers to
// itself assigns Defer(func() Parser[T] { return rule }) and only calls
// the thunk once the whole grammar's variables are initialized.
func Defer[T any](thunk func() Parser[T]) Parser[T] {
	var once sync.Once
	var cached Parser[T]
	ensure := func() {
		debugf("defer: evaluating recursive parser thunk")
		cached = thunk()
	}
	return New(func(v *View) Outcome[T] {
		once.Do(ensure)
		return cached.Parse(v)
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
