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

import (
	"strings"
	"unicode"
)

// Item consumes exactly one character and yields it.
// It fails on an empty input.
func Item() Parser[rune] {
	return ParserFunc[rune](item)
}

func item(in Input) Outcome[rune] {
	r, size, ok := in.Peek()
	if !ok {
		return Failure[rune](in)
	}
	return Success(in.Advance(size), r)
}

// Satisfy consumes one character accepted by test.
func Satisfy(test func(rune) bool) Parser[rune] {
	return Pred(Item(), test)
}

// AsciiDigit matches one of '0'..'9'.
func AsciiDigit() Parser[rune] {
	return Satisfy(isASCIIDigit)
}

// AsciiHexDigit matches '0'..'9', 'a'..'f' or 'A'..'F'.
func AsciiHexDigit() Parser[rune] {
	return Satisfy(func(r rune) bool {
		return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
	})
}

// UpperCase matches an upper case letter.
func UpperCase() Parser[rune] {
	return Satisfy(unicode.IsUpper)
}

// LowerCase matches a lower case letter.
func LowerCase() Parser[rune] {
	return Satisfy(unicode.IsLower)
}

// Letter matches any Unicode letter.
func Letter() Parser[rune] {
	return Satisfy(unicode.IsLetter)
}

// Whitespace matches one Unicode white space character.
func Whitespace() Parser[rune] {
	return Satisfy(unicode.IsSpace)
}

// Spaces skips zero or more white space characters.
func Spaces() Parser[struct{}] {
	return SkipMany(Whitespace())
}

// Char matches the character c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool {
		return r == c
	})
}

// OneOf matches any character contained in set.
func OneOf(set UTF8String) Parser[rune] {
	return Satisfy(func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// NoneOf matches any character not contained in set.
// Like every character parser it fails on an empty input.
func NoneOf(set UTF8String) Parser[rune] {
	return Satisfy(func(r rune) bool {
		return !strings.ContainsRune(set, r)
	})
}

// String matches the literal s as a prefix and yields it.
// On mismatch nothing is consumed, even when a part of s matched.
func String(s UTF8String) Parser[UTF8String] {
	return ParserFunc[UTF8String](func(in Input) Outcome[UTF8String] {
		if !in.HasPrefix(s) {
			return Failure[UTF8String](in)
		}
		return Success(in.Advance(len(s)), s)
	})
}

// PeekString reports a match of the literal s without consuming it.
func PeekString(s UTF8String) Parser[UTF8String] {
	return ParserFunc[UTF8String](func(in Input) Outcome[UTF8String] {
		if !in.HasPrefix(s) {
			return Failure[UTF8String](in)
		}
		return Success(in, s)
	})
}

// MatchLiteral consumes the literal s and yields nothing.
func MatchLiteral(s UTF8String) Parser[struct{}] {
	return ParserFunc[struct{}](func(in Input) Outcome[struct{}] {
		if !in.HasPrefix(s) {
			return Failure[struct{}](in)
		}
		return Success(in.Advance(len(s)), struct{}{})
	})
}

// EOF succeeds only on an empty input.
func EOF() Parser[struct{}] {
	return ParserFunc[struct{}](func(in Input) Outcome[struct{}] {
		if !in.Empty() {
			return Failure[struct{}](in)
		}
		return Success(in, struct{}{})
	})
}

// Lexeme runs p and then skips the white space that follows it, so that
// grammars do not have to interleave explicit white space between tokens.
//
// Trailing white space is optional: a token at the very end of the input
// still matches.
func Lexeme[T any](p Parser[T]) Parser[T] {
	return Left(p, Spaces())
}

// Symbol is Lexeme(String(s)).
func Symbol(s UTF8String) Parser[UTF8String] {
	return Lexeme(String(s))
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
