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

// Tuple is the value produced by Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Pair runs p, then q on the remainder of p.
//
// It succeeds only when both succeed, yielding both values. The sequence is
// fail-fast: if p fails, q is never run. Whichever part fails, the failure is
// anchored at the input Pair was invoked with.
func Pair[A, B any](p Parser[A], q Parser[B]) Parser[Tuple[A, B]] {
	return ParserFunc[Tuple[A, B]](func(in Input) Outcome[Tuple[A, B]] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[Tuple[A, B]](in)
		}
		second := q.Parse(first.Remaining)
		if !second.OK {
			return Failure[Tuple[A, B]](in)
		}
		return Success(second.Remaining, Tuple[A, B]{First: first.Value, Second: second.Value})
	})
}

// Left runs p then q and keeps the value of p.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Pair(p, q), func(t Tuple[A, B]) A {
		return t.First
	})
}

// Right runs p then q and keeps the value of q.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Pair(p, q), func(t Tuple[A, B]) B {
		return t.Second
	})
}

// Between matches open, middle and close in sequence and yields the value of
// middle:
//
//	parens := Between(Char('('), Many(AsciiDigit()), Char(')'))
func Between[O, M, C any](open Parser[O], middle Parser[M], close Parser[C]) Parser[M] {
	return Right(open, Left(middle, close))
}
