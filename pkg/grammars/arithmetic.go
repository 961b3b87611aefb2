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
	"github.com/pkg/errors"
)

// ErrDivisionByZero is the cause of the error returned by Eval when an
// expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

// quantity is an intermediate result: once a division by zero happened, the
// error sticks and the remaining operators keep it.
type quantity struct {
	n   int64
	err error
}

type operator = func(quantity, quantity) quantity

func apply(f func(a, b int64) (int64, error)) operator {
	return func(a, b quantity) quantity {
		if a.err != nil {
			return a
		}
		if b.err != nil {
			return b
		}
		n, err := f(a.n, b.n)
		return quantity{n: n, err: err}
	}
}

var (
	add = apply(func(a, b int64) (int64, error) { return a + b, nil })
	sub = apply(func(a, b int64) (int64, error) { return a - b, nil })
	mul = apply(func(a, b int64) (int64, error) { return a * b, nil })
	div = apply(func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	})
)

// expression builds the grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := number | '(' expr ')' | '-' factor
//
// Tokens may be followed by white space. Operators are left associative and
// integer arithmetic wraps around on overflow.
func expression() parse.Parser[quantity] {
	expr := parse.NewCell[quantity]()
	factor := parse.NewCell[quantity]()

	literal := parse.Bind(parse.Lexeme(parse.Recognize(parse.Many1(parse.AsciiDigit()))), func(s string) parse.Parser[quantity] {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// Out of range literals do not match.
			return parse.Fail[quantity]()
		}
		return parse.Pure(quantity{n: n})
	})
	group := parse.Between[string, quantity, string](parse.Symbol("("), expr, parse.Symbol(")"))
	negated := parse.Map[quantity, quantity](parse.Right[string, quantity](parse.Symbol("-"), factor), func(q quantity) quantity {
		q.n = -q.n
		return q
	})
	factor.Set(parse.Choice(literal, group, negated))

	op := func(symbol string, f operator) parse.Parser[operator] {
		return parse.Map(parse.Symbol(symbol), func(string) operator { return f })
	}
	term := parse.ChainLeft1[quantity](factor, parse.Either(op("*", mul), op("/", div)))
	expr.Set(parse.ChainLeft1(term, parse.Either(op("+", add), op("-", sub))))

	return parse.Right[struct{}, quantity](parse.Spaces(), expr)
}

// Arithmetic matches an integer expression made of + - * /, parentheses and
// unary minus, and evaluates it while parsing. An expression dividing by zero
// does not match.
func Arithmetic() parse.Parser[int64] {
	valid := parse.Pred(expression(), func(q quantity) bool {
		return q.err == nil
	})
	return parse.Map(valid, func(q quantity) int64 {
		return q.n
	})
}

// Eval evaluates the expression s.
//
// Syntax errors wrap parse.ErrNoMatch or parse.ErrTrailingInput, a division
// by zero wraps ErrDivisionByZero.
func Eval(s string) (int64, error) {
	q, err := parse.Run(expression(), s)
	if err != nil {
		return 0, err
	}
	if q.err != nil {
		return 0, errors.Wrapf(q.err, "eval %q", s)
	}
	return q.n, nil
}
