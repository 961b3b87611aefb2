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

package stream

// Item is the carrier flowing through the pipeline: one scanned token of the
// input (a line by default) and what became of it.
//
//   - Index is the token sequence number assigned by Reader. Stages must
//     preserve it so that consumers can restore the input order.
//   - Text is the token as scanned.
//   - Value is the parsed value, meaningful only when Err is nil.
//   - Err is a per-item error.
//
// Errors carried by an Item are *data*, not control-flow: a line that does
// not parse does not stop the stream. It is up to later stages or to the
// final consumer to route, log or drop failed items.
type Item[T any] struct {
	Index int
	Text  string
	Value T
	Err   error
}

// WithError returns a copy of the item carrying err.
func (it Item[T]) WithError(err error) Item[T] {
	it.Err = err
	return it
}

// Failed reports whether the item carries an error.
func (it Item[T]) Failed() bool {
	return it.Err != nil
}

// Line is an item as produced by Reader, before any parsing.
type Line = Item[string]
