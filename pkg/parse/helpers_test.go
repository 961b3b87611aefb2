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
	"reflect"
	"sync/atomic"
	"testing"
)

// counting wraps a parser and counts its invocations. It does not alter the
// outcome, so it can stand in for the wrapped parser in any grammar.
type counting[T any] struct {
	p     Parser[T]
	calls atomic.Int64
}

func (c *counting[T]) Parse(in Input) Outcome[T] {
	c.calls.Add(1)
	return c.p.Parse(in)
}

// expectSuccess fails the test unless out matched with the given remainder
// and value.
func expectSuccess[T any](t *testing.T, out Outcome[T], rest string, value T) {
	t.Helper()
	if !out.OK {
		t.Fatalf("unexpected failure at %q, want success with %v", out.Remaining.Rest(), value)
	}
	if got := out.Remaining.Rest(); got != rest {
		t.Fatalf("unexpected remaining input: got %q want %q", got, rest)
	}
	if !reflect.DeepEqual(out.Value, value) {
		t.Fatalf("unexpected value: got %#v want %#v", out.Value, value)
	}
}

// expectFailure fails the test unless out failed anchored at at.
func expectFailure[T any](t *testing.T, out Outcome[T], at string) {
	t.Helper()
	if out.OK {
		t.Fatalf("unexpected success with value %#v and remaining %q", out.Value, out.Remaining.Rest())
	}
	if got := out.Remaining.Rest(); got != at {
		t.Fatalf("unexpected failure anchor: got %q want %q", got, at)
	}
}
