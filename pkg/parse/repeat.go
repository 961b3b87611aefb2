// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parse

// Unbounded repetition (Many, Many1, SkipMany, SkipMany1, SepBy, SepBy1,
// ChainLeft1) requires forward progress: after the first match, an iteration
// that succeeds without consuming anything ends the loop like a failure
// would, and its value is dropped. Without that rule Many(Maybe(p)) would
// never return. The first match is always kept, even when it is zero width,
// so Many1(Pure(x)) and Many(Pure(x)) both yield [x].
//
// Count is bounded and accepts zero-width matches.

// advanced reports whether next is strictly further than cur.
func advanced(cur, next Input) bool {
	return next.Offset() > cur.Offset()
}

// Option is the value produced by Maybe.
type Option[T any] struct {
	Value   T
	Present bool
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrElse returns the value when present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}

// Many applies p until it fails and collects the values in order.
//
// Many never fails: when p does not match at all it succeeds with an empty
// slice and the original input.
func Many[T any](p Parser[T]) Parser[[]T] {
	return ParserFunc[[]T](func(in Input) Outcome[[]T] {
		first := p.Parse(in)
		if !first.OK {
			return Success(in, make([]T, 0))
		}
		values, rest := collect(p, first.Remaining, []T{first.Value})
		return Success(rest, values)
	})
}

// Many1 is like Many but requires at least one match.
// It fails, anchored at the original input, when the first attempt fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return ParserFunc[[]T](func(in Input) Outcome[[]T] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[[]T](in)
		}
		values, rest := collect(p, first.Remaining, []T{first.Value})
		return Success(rest, values)
	})
}

// SkipMany applies p until it fails and discards the values.
// Like Many, it never fails.
func SkipMany[T any](p Parser[T]) Parser[struct{}] {
	return ParserFunc[struct{}](func(in Input) Outcome[struct{}] {
		first := p.Parse(in)
		if !first.OK {
			return Success(in, struct{}{})
		}
		return Success(skip(p, first.Remaining), struct{}{})
	})
}

// SkipMany1 is like SkipMany but requires at least one match.
func SkipMany1[T any](p Parser[T]) Parser[struct{}] {
	return ParserFunc[struct{}](func(in Input) Outcome[struct{}] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[struct{}](in)
		}
		return Success(skip(p, first.Remaining), struct{}{})
	})
}

// Maybe tries p. A match is returned as a present Option; a failure is not
// an error: Maybe then succeeds with an absent Option and the original input.
func Maybe[T any](p Parser[T]) Parser[Option[T]] {
	return ParserFunc[Option[T]](func(in Input) Outcome[Option[T]] {
		out := p.Parse(in)
		if !out.OK {
			return Success(in, None[T]())
		}
		return Success(out.Remaining, Some(out.Value))
	})
}

// Count applies p exactly n times.
//
// It fails, anchored at the original input, if any of the n attempts fails.
// Count(0, p) succeeds with an empty slice without running p.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	return ParserFunc[[]T](func(in Input) Outcome[[]T] {
		if n <= 0 {
			return Success(in, make([]T, 0))
		}
		values := make([]T, 0, n)
		cur := in
		for i := 0; i < n; i++ {
			out := p.Parse(cur)
			if !out.OK {
				return Failure[[]T](in)
			}
			values = append(values, out.Value)
			cur = out.Remaining
		}
		return Success(cur, values)
	})
}

// SepBy matches zero or more occurrences of p separated by sep and yields
// the values of p. It never fails.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Either[[]T](SepBy1(p, sep), ParserFunc[[]T](func(in Input) Outcome[[]T] {
		return Success(in, make([]T, 0))
	}))
}

// SepBy1 matches one or more occurrences of p separated by sep.
//
// A trailing separator that is not followed by p is left unconsumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return ParserFunc[[]T](func(in Input) Outcome[[]T] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[[]T](in)
		}
		values, rest := collect(Right(sep, p), first.Remaining, []T{first.Value})
		return Success(rest, values)
	})
}

// ChainLeft1 parses one or more p separated by op and folds the values from
// the left with the functions yielded by op.
//
//	sum := ChainLeft1(number, Map(Char('+'), func(rune) func(int, int) int {
//		return func(a, b int) int { return a + b }
//	}))
//
// "1+2+3" evaluates as (1+2)+3.
func ChainLeft1[T any](p Parser[T], op Parser[func(T, T) T]) Parser[T] {
	step := Pair(op, p)
	return ParserFunc[T](func(in Input) Outcome[T] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[T](in)
		}
		acc, cur := first.Value, first.Remaining
		for {
			out := step.Parse(cur)
			if !out.OK || !advanced(cur, out.Remaining) {
				return Success(cur, acc)
			}
			acc = out.Value.First(acc, out.Value.Second)
			cur = out.Remaining
		}
	})
}

// collect appends the values of p to values until p fails or stops making
// progress.
func collect[T any](p Parser[T], in Input, values []T) ([]T, Input) {
	cur := in
	for {
		out := p.Parse(cur)
		if !out.OK || !advanced(cur, out.Remaining) {
			return values, cur
		}
		values = append(values, out.Value)
		cur = out.Remaining
	}
}

// skip runs p until it fails or stops making progress.
func skip[T any](p Parser[T], in Input) Input {
	cur := in
	for {
		out := p.Parse(cur)
		if !out.OK || !advanced(cur, out.Remaining) {
			return cur
		}
		cur = out.Remaining
	}
}
