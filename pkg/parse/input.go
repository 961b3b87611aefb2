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
	"unicode/utf8"
)

// UTF8String is used for code expressivity.
// Inputs are always read as UTF-8 text.
type UTF8String = string

// Input is an immutable view over the unconsumed suffix of a text.
//
// It is a cursor into the original buffer: consuming characters returns a new
// Input with a larger offset, the receiver is never modified. Because of that,
// an Input can be kept around and handed to another parser to retry from the
// same position (this is how Either backtracks).
//
// The zero value is an empty input.
type Input struct {
	src UTF8String
	off int
}

// NewInput returns an Input positioned at the start of text.
func NewInput(text UTF8String) Input {
	return Input{src: text}
}

// Rest returns the unconsumed text.
func (in Input) Rest() UTF8String {
	return in.src[in.off:]
}

// Offset returns the byte offset of the cursor in the original text.
func (in Input) Offset() int {
	return in.off
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// Empty reports whether the whole text has been consumed.
func (in Input) Empty() bool {
	return in.off >= len(in.src)
}

// Peek decodes the first character of the unconsumed text.
// size is its encoded length in bytes. ok is false on an empty input.
//
// Invalid UTF-8 is reported as utf8.RuneError with a size of 1, so that a
// parser consuming it always makes progress.
func (in Input) Peek() (r rune, size int, ok bool) {
	if in.Empty() {
		return utf8.RuneError, 0, false
	}
	r, size = utf8.DecodeRuneInString(in.src[in.off:])
	return r, size, true
}

// Advance returns the Input that starts n bytes further.
// n is clamped to the unconsumed length.
func (in Input) Advance(n int) Input {
	if n <= 0 {
		return in
	}
	if n > in.Len() {
		n = in.Len()
	}
	in.off += n
	return in
}

// HasPrefix reports whether the unconsumed text starts with s.
func (in Input) HasPrefix(s UTF8String) bool {
	return strings.HasPrefix(in.src[in.off:], s)
}

// Since returns the text consumed between from and in.
// from must be an earlier position of the same text.
func (in Input) Since(from Input) UTF8String {
	if from.off > in.off {
		return ""
	}
	return in.src[from.off:in.off]
}

// String implements fmt.Stringer.
func (in Input) String() string {
	return in.Rest()
}
