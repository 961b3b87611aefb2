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
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrNoMatch is the cause of the error returned by Run when the grammar
	// does not match the text.
	ErrNoMatch = errors.New("no match")
	// ErrTrailingInput is the cause of the error returned by Run when the
	// grammar matched only a prefix of the text.
	ErrTrailingInput = errors.New("unconsumed input")
)

// excerptRunes bounds the text quoted in Run errors.
const excerptRunes = 16

// Run parses the whole text with p.
//
// Unlike Parse, which happily matches a prefix, Run only succeeds when p
// consumes every character. The returned error wraps ErrNoMatch or
// ErrTrailingInput; use errors.Cause (or errors.Is) to tell them apart.
func Run[T any](p Parser[T], text UTF8String) (T, error) {
	var zero T
	out := ParseString(p, text)
	if !out.OK {
		return zero, errors.Wrapf(ErrNoMatch, "parse: offset %d near %q", out.Remaining.Offset(), excerpt(out.Remaining))
	}
	if !out.Remaining.Empty() {
		return zero, errors.Wrapf(ErrTrailingInput, "parse: offset %d near %q", out.Remaining.Offset(), excerpt(out.Remaining))
	}
	return out.Value, nil
}

// Accept reports whether p matches the whole text.
func Accept[T any](p Parser[T], text UTF8String) bool {
	_, err := Run(p, text)
	return err == nil
}

// excerpt returns the first characters of the unconsumed text.
func excerpt(in Input) UTF8String {
	rest := in.Rest()
	if utf8.RuneCountInString(rest) <= excerptRunes {
		return rest
	}
	n := 0
	for i := range rest {
		if n == excerptRunes {
			return rest[:i] + "…"
		}
		n++
	}
	return rest
}
