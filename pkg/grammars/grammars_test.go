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
	"reflect"
	"strings"
	"testing"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parse"
	"github.com/pkg/errors"
)

func TestIsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"01234567", true},
		{"123.456", true},
		{"123.456.789", false},
		{"123abc", true},
		{"123abc.456", false},
		{"-12.5e-3", true},
		{".5", true},
		{"5.", true},
		{"-", false},
		{"", false},
		{"12 34", false},
		{"ffffffffffffffff", true},
		{"1ffffffffffffffff", false},
		{"00000000000000000000cafe", true},
		{strings.Repeat("f", 40), false},
		{strings.Repeat("9", 40), true},
	}
	for _, tt := range tests {
		if got := IsNumber(tt.in); got != tt.want {
			t.Fatalf("IsNumber(%q): got %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestWord_Kinds(t *testing.T) {
	tests := []struct {
		in   string
		want WordKind
	}{
		{"supercalifragilisticexpialidocious", KindSpecial},
		{"42", KindNumber},
		{"hello", KindRegular},
		{"rock-'n-roll", KindRegular},
		{"déjà", KindRegular},
	}
	for _, tt := range tests {
		got, err := parse.Run(Word(), tt.in)
		if err != nil {
			t.Fatalf("Word(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Word(%q): got %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsWord_Rejects(t *testing.T) {
	for _, s := range []string{"a--b-c", "it''s", "x!", "12ab-", "hello world"} {
		if IsWord(s) {
			t.Fatalf("IsWord(%q) should be false", s)
		}
	}
}

func TestMostlyWords(t *testing.T) {
	if !MostlyWords("Cooking MC's like a pound of bacon") {
		t.Fatalf("plain English should be mostly words")
	}
	if MostlyWords("x!&% ;;; $$ a") {
		t.Fatalf("garbage should not be mostly words")
	}
	// "a", "" and "x!": the empty part left by the double space is a word.
	if !MostlyWords("a  x!") {
		t.Fatalf("double spaced text should be mostly words")
	}
	if MostlyWords("x!  ;;") {
		t.Fatalf("one empty part should not outweigh two non-words")
	}
}

func TestWord_Empty(t *testing.T) {
	got, err := parse.Run(Word(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != KindRegular {
		t.Fatalf("unexpected kind: got %v want %v", got, KindRegular)
	}
	if !IsWord("") {
		t.Fatalf("the empty string should be a word")
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1", 1},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 3 - 2", 5},
		{"20 / 2 / 5", 2},
		{"  -(4 - 6) * -3 ", -6},
		{"7 / 2", 3},
	}
	for _, tt := range tests {
		got, err := Eval(tt.in)
		if err != nil {
			t.Fatalf("Eval(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Eval(%q): got %d want %d", tt.in, got, tt.want)
		}
		if v, err := parse.Run(Arithmetic(), tt.in); err != nil || v != tt.want {
			t.Fatalf("Arithmetic(%q): got %d, %v want %d", tt.in, v, err, tt.want)
		}
	}
}

func TestArithmetic_Errors(t *testing.T) {
	_, err := Eval("1 / (2 - 2)")
	if errors.Cause(err) != ErrDivisionByZero {
		t.Fatalf("unexpected error: got %v want cause %v", err, ErrDivisionByZero)
	}
	if parse.Accept(Arithmetic(), "1 / 0") {
		t.Fatalf("division by zero should not match")
	}

	_, err = Eval("1 +")
	if errors.Cause(err) != parse.ErrTrailingInput {
		t.Fatalf("unexpected error: got %v want cause %v", err, parse.ErrTrailingInput)
	}
	_, err = Eval("* 1")
	if errors.Cause(err) != parse.ErrNoMatch {
		t.Fatalf("unexpected error: got %v want cause %v", err, parse.ErrNoMatch)
	}
	_, err = Eval("99999999999999999999")
	if errors.Cause(err) != parse.ErrNoMatch {
		t.Fatalf("out of range literal: got %v want cause %v", err, parse.ErrNoMatch)
	}
}

func TestBalanced(t *testing.T) {
	tests := []struct {
		in    string
		depth int
		ok    bool
	}{
		{"", 0, true},
		{"()", 1, true},
		{"([]{})", 2, true},
		{"()[({})]", 3, true},
		{"([)]", 0, false},
		{"((", 0, false},
		{"())", 0, false},
	}
	for _, tt := range tests {
		depth, ok := NestingDepth(tt.in)
		if ok != tt.ok || (ok && depth != tt.depth) {
			t.Fatalf("NestingDepth(%q): got %d, %v want %d, %v", tt.in, depth, ok, tt.depth, tt.ok)
		}
	}

	out := parse.ParseString(Balanced(), "([])x")
	if !out.OK || out.Value != 2 || out.Remaining.Rest() != "x" {
		t.Fatalf("unexpected prefix match: %#v", out)
	}
}

func TestRegistry(t *testing.T) {
	if got, want := Names(), []string{"arithmetic", "balanced", "number", "word"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected names: got %v want %v", got, want)
	}

	p, ok := Lookup("arithmetic")
	if !ok {
		t.Fatalf("arithmetic grammar should be registered")
	}
	if v, err := parse.Run(p, "6 * 7"); err != nil || v != "42" {
		t.Fatalf("unexpected rendering: got %q, %v", v, err)
	}
	if v, err := parse.Run(Named["word"], "hello"); err != nil || v != "regular" {
		t.Fatalf("unexpected rendering: got %q, %v", v, err)
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatalf("unknown grammar should not be found")
	}
}
