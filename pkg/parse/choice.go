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

// Either tries p, and q only when p fails.
//
// The choice is left-biased: when p succeeds its outcome is returned as is and
// q is never run, even if q would consume more. When p fails, q is run on the
// same input p received. No state has to be restored since parsers do not
// mutate anything.
func Either[T any](p, q Parser[T]) Parser[T] {
	return ParserFunc[T](func(in Input) Outcome[T] {
		if out := p.Parse(in); out.OK {
			return out
		}
		return q.Parse(in)
	})
}

// Choice tries each parser in order and returns the first success.
// Choice() with no alternative never matches.
//
// Choice(a, b, c) behaves like Either(a, Either(b, c)).
func Choice[T any](alternatives ...Parser[T]) Parser[T] {
	switch len(alternatives) {
	case 0:
		return Fail[T]()
	case 1:
		return alternatives[0]
	}
	alts := append([]Parser[T](nil), alternatives...)
	return ParserFunc[T](func(in Input) Outcome[T] {
		for _, p := range alts {
			if out := p.Parse(in); out.OK {
				return out
			}
		}
		return Failure[T](in)
	})
}
