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

import "testing"

func TestMany_Digits(t *testing.T) {
	p := Many(AsciiDigit())

	expectSuccess(t, ParseString(p, "123abc"), "abc", []rune{'1', '2', '3'})
	expectSuccess(t, ParseString(p, "abc"), "abc", []rune{})
}

func TestMany_NeverFails(t *testing.T) {
	parsers := []Parser[[]rune]{
		Many(AsciiDigit()),
		Many(Char('x')),
		Many(Item()),
		Many(Fail[rune]()),
	}
	for _, s := range []string{"", "x", "123", "xyz", "   ", "ü"} {
		for i, p := range parsers {
			if out := ParseString(p, s); !out.OK {
				t.Fatalf("parser %d failed on %q", i, s)
			}
		}
	}
}

func TestMany1_SucceedsIffOneMatch(t *testing.T) {
	p := Many1(AsciiDigit())

	expectSuccess(t, ParseString(p, "42abc"), "abc", []rune{'4', '2'})
	expectFailure(t, ParseString(p, "abc"), "abc")
	expectFailure(t, ParseString(p, ""), "")
}

func TestRepetition_StopsOnZeroWidthSuccess(t *testing.T) {
	zeroWidth := Maybe(Char('a'))

	out := ParseString(Many(zeroWidth), "aab")
	if !out.OK {
		t.Fatalf("many over an optional parser should succeed")
	}
	if got, want := len(out.Value), 2; got != want {
		t.Fatalf("unexpected number of values: got %d want %d", got, want)
	}
	if got, want := out.Remaining.Rest(), "b"; got != want {
		t.Fatalf("unexpected remaining input: got %q want %q", got, want)
	}

	expectSuccess(t, ParseString(SkipMany(Pure(1)), "abc"), "abc", struct{}{})
	expectSuccess(t, ParseString(SepBy(Pure(1), Pure(2)), "abc"), "abc", []int{1})
}

func TestRepetition_KeepsZeroWidthFirstMatch(t *testing.T) {
	expectSuccess(t, ParseString(Many1(Pure('z')), "abc"), "abc", []rune{'z'})
	expectSuccess(t, ParseString(Many(Pure('z')), "abc"), "abc", []rune{'z'})
	expectSuccess(t, ParseString(SkipMany1(Pure('z')), "abc"), "abc", struct{}{})
	expectSuccess(t, ParseString(SkipMany1(Spaces()), "abc"), "abc", struct{}{})
	expectSuccess(t, ParseString(SepBy1(Pure('z'), Char(',')), "abc"), "abc", []rune{'z'})
	expectSuccess(t, ParseString(Many1(Maybe(Char('a'))), "b"), "b", []Option[rune]{None[rune]()})

	// After a consuming match, a zero width one still ends the loop.
	expectSuccess(t, ParseString(Many1(Maybe(Char('a'))), "ab"), "b", []Option[rune]{Some('a')})

	// Failing first attempts still fail.
	expectFailure(t, ParseString(Many1(Fail[rune]()), "abc"), "abc")
	expectFailure(t, ParseString(SkipMany1(Char('x')), "abc"), "abc")
}

func TestSkipMany(t *testing.T) {
	expectSuccess(t, ParseString(SkipMany(Whitespace()), "  \t x"), "x", struct{}{})
	expectSuccess(t, ParseString(SkipMany(Whitespace()), "x"), "x", struct{}{})
	expectSuccess(t, ParseString(SkipMany1(Whitespace()), " \nx"), "x", struct{}{})
	expectFailure(t, ParseString(SkipMany1(Whitespace()), "x"), "x")
}

func TestMaybe(t *testing.T) {
	sign := Maybe(OneOf("+-"))

	expectSuccess(t, ParseString(sign, "-1"), "1", Some('-'))
	expectSuccess(t, ParseString(sign, "1"), "1", None[rune]())

	if got := None[rune]().OrElse('+'); got != '+' {
		t.Fatalf("unexpected default: got %q", got)
	}
	if v, ok := Some(3).Get(); !ok || v != 3 {
		t.Fatalf("unexpected option content: %v %v", v, ok)
	}
}

func TestCount(t *testing.T) {
	expectSuccess(t, ParseString(Count(2, Item()), "abc"), "c", []rune{'a', 'b'})
	expectFailure(t, ParseString(Count(3, Item()), "ab"), "ab")
	expectSuccess(t, ParseString(Count(0, Item()), "ab"), "ab", []rune{})
	expectSuccess(t, ParseString(Count(0, Item()), ""), "", []rune{})
	// Bounded: zero-width matches are fine.
	expectSuccess(t, ParseString(Count(3, Pure('z')), "ab"), "ab", []rune{'z', 'z', 'z'})
}

func TestSepBy(t *testing.T) {
	digits := Recognize(Many1(AsciiDigit()))
	p := SepBy(digits, Char(','))

	expectSuccess(t, ParseString(p, "1,22,333;"), ";", []string{"1", "22", "333"})
	expectSuccess(t, ParseString(p, ";"), ";", []string{})
	// A dangling separator stays unconsumed.
	expectSuccess(t, ParseString(p, "1,"), ",", []string{"1"})
	expectFailure(t, ParseString(SepBy1(digits, Char(',')), ";"), ";")
}

func TestChainLeft1_FoldsLeft(t *testing.T) {
	number := Map(Many1(AsciiDigit()), func(ds []rune) int {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		return n
	})
	minus := Map(Char('-'), func(rune) func(int, int) int {
		return func(a, b int) int { return a - b }
	})
	p := ChainLeft1(number, minus)

	// (10-3)-2, not 10-(3-2).
	expectSuccess(t, ParseString(p, "10-3-2"), "", 5)
	expectSuccess(t, ParseString(p, "7-x"), "-x", 7)
	expectFailure(t, ParseString(p, "-1"), "-1")
}
