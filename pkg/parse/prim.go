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

// Map returns a parser that replaces the value of p with f(value).
// Failures pass through unchanged and f is not called.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return ParserFunc[B](func(in Input) Outcome[B] {
		out := p.Parse(in)
		if !out.OK {
			return Failure[B](out.Remaining)
		}
		return Success(out.Remaining, f(out.Value))
	})
}

// Bind runs p, then hands its value to f to obtain the parser that continues
// on the remaining input.
//
// It is the building block for context sensitive grammars, where what comes
// next depends on what was already parsed:
//
//	// A length prefixed run of 'x': "3xxx".
//	counted := Bind(AsciiDigit(), func(d rune) Parser[[]rune] {
//		return Count(int(d-'0'), Char('x'))
//	})
//
// When p fails, f is not called. When the continuation fails, the failure is
// anchored at the input Bind was invoked with.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return ParserFunc[B](func(in Input) Outcome[B] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[B](in)
		}
		next := f(first.Value)
		if next == nil {
			return Failure[B](in)
		}
		out := next.Parse(first.Remaining)
		if !out.OK {
			return Failure[B](in)
		}
		return out
	})
}

// Pred returns a parser that succeeds only when p succeeds and test accepts
// its value.
//
// A rejected value turns into a failure anchored at the original input: what
// p consumed is discarded, so Pred composes safely under Either.
func Pred[T any](p Parser[T], test func(T) bool) Parser[T] {
	return ParserFunc[T](func(in Input) Outcome[T] {
		out := p.Parse(in)
		if !out.OK || !test(out.Value) {
			return Failure[T](in)
		}
		return out
	})
}

// Pure returns a parser that always succeeds with v, consuming nothing.
func Pure[T any](v T) Parser[T] {
	return ParserFunc[T](func(in Input) Outcome[T] {
		return Success(in, v)
	})
}

// Fail returns a parser that never matches.
func Fail[T any]() Parser[T] {
	return ParserFunc[T](func(in Input) Outcome[T] {
		return Failure[T](in)
	})
}

// Recognize runs p and yields the text it consumed instead of its value.
func Recognize[T any](p Parser[T]) Parser[UTF8String] {
	return ParserFunc[UTF8String](func(in Input) Outcome[UTF8String] {
		out := p.Parse(in)
		if !out.OK {
			return Failure[UTF8String](in)
		}
		return Success(out.Remaining, out.Remaining.Since(in))
	})
}

// LookAhead runs p and keeps its value without consuming any input.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return ParserFunc[T](func(in Input) Outcome[T] {
		out := p.Parse(in)
		if !out.OK {
			return Failure[T](in)
		}
		return Success(in, out.Value)
	})
}

// NotFollowedBy succeeds without consuming input when p fails, and fails when
// p matches.
func NotFollowedBy[T any](p Parser[T]) Parser[struct{}] {
	return ParserFunc[struct{}](func(in Input) Outcome[struct{}] {
		if p.Parse(in).OK {
			return Failure[struct{}](in)
		}
		return Success(in, struct{}{})
	})
}
