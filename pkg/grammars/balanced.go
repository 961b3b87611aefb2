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

package grammars

import "github.com/benoit-pereira-da-silva/parsec/pkg/parse"

// brackets lists the supported open/close pairs.
var brackets = [][2]rune{{'(', ')'}, {'[', ']'}, {'{', '}'}}

// Balanced matches a possibly empty sequence of properly nested brackets
// ("()", "[]" and "{}") and yields the maximum nesting depth.
//
// Any other character ends the sequence: "([])x" matches "([])" with a depth
// of 2 and leaves "x". "([)]" only matches the empty prefix.
func Balanced() parse.Parser[int] {
	sequence := parse.NewCell[int]()

	groups := make([]parse.Parser[int], 0, len(brackets))
	for _, b := range brackets {
		inner := parse.Between[rune, int, rune](parse.Char(b[0]), sequence, parse.Char(b[1]))
		groups = append(groups, parse.Map(inner, func(depth int) int {
			return depth + 1
		}))
	}

	sequence.Set(parse.Map(parse.Many(parse.Choice(groups...)), func(depths []int) int {
		deepest := 0
		for _, d := range depths {
			deepest = max(deepest, d)
		}
		return deepest
	}))
	return sequence
}

// NestingDepth returns the maximum nesting depth of s, or false when s is not
// made only of balanced brackets.
func NestingDepth(s string) (int, bool) {
	depth, err := parse.Run(Balanced(), s)
	return depth, err == nil
}
