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

import "sync"

// Cell is a parser declared before its definition exists.
//
// A grammar rule that refers to itself cannot hold a reference to its own
// value while it is being built. A Cell breaks the cycle: declare it, use it
// inside the rule, then install the rule with Set.
//
// Usage:
//
//	nested := NewCell[int]()
//	nested.Set(Either(
//		Map(Between(Char('('), nested, Char(')')), func(d int) int { return d + 1 }),
//		Pure(0),
//	))
//
// Set must be called once, before the first Parse. Parsing a Cell that was
// never set fails at its input.
type Cell[T any] struct {
	mu sync.RWMutex
	p  Parser[T]
}

// NewCell returns an empty Cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Set installs the parser behind the cell.
// It panics if the cell is already set, since parsers are immutable once
// built.
func (c *Cell[T]) Set(p Parser[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.p != nil {
		panic("parse: Cell.Set called twice")
	}
	c.p = p
}

// Parse implements Parser[T].
func (c *Cell[T]) Parse(in Input) Outcome[T] {
	c.mu.RLock()
	p := c.p
	c.mu.RUnlock()
	if p == nil {
		return Failure[T](in)
	}
	return p.Parse(in)
}

// Lazy defers the construction of a parser to its first use.
// build is called at most once. If it panics, that first Parse and every
// later one panic with the same value.
//
// It is the function flavored alternative to Cell:
//
//	var expr Parser[int]
//	expr = Lazy(func() Parser[int] { return Either(term(expr), factor) })
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once     sync.Once
		p        Parser[T]
		panicked bool
		failure  any
	)
	return ParserFunc[T](func(in Input) Outcome[T] {
		once.Do(func() {
			defer func() {
				if r := recover(); r != nil {
					panicked, failure = true, r
				}
			}()
			p = build()
		})
		if panicked {
			panic(failure)
		}
		if p == nil {
			return Failure[T](in)
		}
		return p.Parse(in)
	})
}
