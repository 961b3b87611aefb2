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

// Outcome is the result of running a Parser on an Input.
//
// On success OK is true, Value holds the parsed value and Remaining is the
// unconsumed suffix (never longer than the input the parser received).
//
// On failure OK is false and Remaining is the position where matching was
// abandoned. Every parser of this package anchors a failure at the input it
// was invoked with, whatever its sub-parsers consumed before giving up.
type Outcome[T any] struct {
	Remaining Input
	Value     T
	OK        bool
}

// Success builds a successful Outcome.
func Success[T any](remaining Input, value T) Outcome[T] {
	return Outcome[T]{Remaining: remaining, Value: value, OK: true}
}

// Failure builds a failed Outcome anchored at at.
func Failure[T any](at Input) Outcome[T] {
	return Outcome[T]{Remaining: at}
}

// Parser is the capability shared by every grammar element.
//
// Implementations must respect the following contract:
//
//   - Purity: Parse never mutates shared state, and the same input always
//     produces the same Outcome. Parser values are immutable once built and
//     can be used concurrently.
//   - Conservation: on success, Remaining is a suffix of in.
//   - Anchored failure: on failure, Remaining must be in itself, never a
//     partially advanced position.
//
// Either, Maybe and the repetition combinators retry alternatives from the
// original Input without any save/restore step. That backtracking is only
// correct for parsers honouring the contract above: a stateful parser (for
// example a lexer that keeps a cursor between calls) breaks it.
type Parser[T any] interface {
	Parse(in Input) Outcome[T]
}

// ParserFunc is a function adapter that implements Parser.
//
// It allows plain functions to be used as Parser values:
//
//	bang := ParserFunc[rune](func(in Input) Outcome[rune] {
//		if in.HasPrefix("!") {
//			return Success(in.Advance(1), '!')
//		}
//		return Failure[rune](in)
//	})
type ParserFunc[T any] func(in Input) Outcome[T]

// Parse calls f(in).
//
// A nil ParserFunc never matches.
func (f ParserFunc[T]) Parse(in Input) Outcome[T] {
	if f == nil {
		return Failure[T](in)
	}
	return f(in)
}

// ParseString runs p on text.
func ParseString[T any](p Parser[T], text UTF8String) Outcome[T] {
	return p.Parse(NewInput(text))
}
