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

import (
	"strconv"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parse"
)

// Number matches a numeric token and yields its text.
//
// Two shapes are accepted:
//
//   - a decimal float: an optional sign, digits with an optional fraction
//     (or a bare fraction such as ".5"), and an optional exponent;
//   - a run of hexadecimal digits that fits in 64 bits, which also covers
//     binary, octal and decimal integers. "123abc" and even "cafe" are
//     numbers.
//
// A token is only a number if no further digit or dot follows it, so
// "123.456.789" and "123abc.456" are rejected instead of matching a prefix.
func Number() parse.Parser[string] {
	digits := parse.Many1(parse.AsciiDigit())
	sign := parse.Maybe(parse.OneOf("+-"))

	mantissa := parse.Either(
		parse.Recognize(parse.Pair(digits, parse.Maybe(parse.Pair(parse.Char('.'), parse.Many(parse.AsciiDigit()))))),
		parse.Recognize(parse.Pair(parse.Char('.'), digits)),
	)
	exponent := parse.Maybe(parse.Recognize(parse.Pair(parse.OneOf("eE"), parse.Pair(sign, digits))))
	float := parse.Recognize(parse.Pair(sign, parse.Pair(mantissa, exponent)))

	hex := parse.Pred(parse.Recognize(parse.Many1(parse.AsciiHexDigit())), func(s string) bool {
		_, err := strconv.ParseUint(s, 16, 64)
		return err == nil
	})

	return parse.Either(
		parse.Left(float, parse.NotFollowedBy(parse.Either(parse.AsciiHexDigit(), parse.Char('.')))),
		parse.Left(hex, parse.NotFollowedBy(parse.Char('.'))),
	)
}

// IsNumber reports whether s as a whole is a number.
func IsNumber(s string) bool {
	return parse.Accept(Number(), s)
}
