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

// Package parse is a parser combinator library for resident UTF-8 text.
//
// A grammar is a Parser value assembled bottom-up: character level parsers
// (Item, Char, OneOf, String, ...) are combined with Map, Bind, Pred, Pair,
// Either, Many and friends into a single parser whose value type is whatever
// the grammar author chooses. Running it is one top-down, left-to-right pass
// with no separate tokenizer:
//
//	digits := Many1(AsciiDigit())
//	list := Between(Symbol("["), SepBy(Lexeme(digits), Symbol(",")), Char(']'))
//
//	out := ParseString(list, "[12, 3]")
//	// out.OK == true, len(out.Value) == 2, out.Remaining.Rest() == ""
//
// Failure is data: an Outcome with OK == false anchored at the input the
// parser received. Since parsers never mutate anything, alternatives are
// retried from the same Input value, which is all the backtracking needs.
//
// Recursive grammars go through a Cell or Lazy.
package parse
