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
	"strings"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parse"
)

// WordKind classifies a token recognized by Word.
type WordKind int

const (
	KindSpecial WordKind = iota // one of the long dictionary words
	KindNumber                  // see Number
	KindRegular                 // letters with a few hyphens or one apostrophe
)

func (k WordKind) String() string {
	switch k {
	case KindSpecial:
		return "special"
	case KindNumber:
		return "number"
	case KindRegular:
		return "regular"
	default:
		return "unknown"
	}
}

// specialWords are accepted verbatim, whatever the other rules say.
var specialWords = []string{
	"pneumonoultramicroscopicsilicovolcanoconiosis",
	"supercalifragilisticexpialidocious",
	"pseudopseudohypoparathyroidism",
	"antidisestablishmentarianism",
	"honorificabilitudinitatibus",
}

const (
	maxHyphens    = 2
	maxApostrophe = 1
)

// SpecialWord matches one of the very long dictionary words.
func SpecialWord() parse.Parser[string] {
	alternatives := make([]parse.Parser[string], 0, len(specialWords))
	for _, w := range specialWords {
		alternatives = append(alternatives, parse.String(w))
	}
	return parse.Choice(alternatives...)
}

// RegularWord matches a run of Unicode letters containing at most two
// hyphens and one apostrophe, anywhere in the word ("rock-'n-roll" is fine,
// "a--b-c" is not). The empty word is regular.
func RegularWord() parse.Parser[string] {
	body := parse.Recognize(parse.Many(parse.Either(parse.Letter(), parse.OneOf("-'"))))
	return parse.Pred(body, func(w string) bool {
		return strings.Count(w, "-") <= maxHyphens && strings.Count(w, "'") <= maxApostrophe
	})
}

// Word matches a special word, a number or a regular word, in that order,
// and reports which one matched.
func Word() parse.Parser[WordKind] {
	kind := func(k WordKind) func(string) WordKind {
		return func(string) WordKind { return k }
	}
	return parse.Choice(
		parse.Map(parse.Left(SpecialWord(), parse.EOF()), kind(KindSpecial)),
		parse.Map(parse.Left(Number(), parse.EOF()), kind(KindNumber)),
		parse.Map(parse.Left(RegularWord(), parse.EOF()), kind(KindRegular)),
	)
}

// IsWord reports whether s as a whole is a word.
func IsWord(s string) bool {
	return parse.Accept(Word(), s)
}

// MostlyWords reports whether the space separated parts of line contain more
// words than non-words. Parts are split on single spaces, so consecutive
// spaces produce empty parts, which are regular words.
//
// It is a cheap way of telling readable text from garbage, for instance when
// trying every key of a single byte XOR cipher.
func MostlyWords(line string) bool {
	word := Word()
	valid, invalid := 0, 0
	for _, part := range strings.Split(line, " ") {
		if parse.Accept(word, part) {
			valid++
		} else {
			invalid++
		}
	}
	return valid > invalid
}
