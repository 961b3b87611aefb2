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

import (
	"context"
	"log/slog"
	"runtime/debug"
)

// Async starts a single-worker streaming "map" stage.
//
// It consumes values from in, applies f to each of them and sends the
// results, in order, to the returned channel.
//
//   - Async never closes in. The upstream stage owns the input channel.
//   - Async closes the returned channel exactly once, when in is closed,
//     when ctx is canceled or when f panics.
//   - Every receive and every send also watches ctx.Done(), so a consumer
//     that stops early must cancel ctx to release the worker.
//
// The returned channel is unbuffered: a slow consumer slows the whole
// upstream pipeline down and memory stays bounded.
//
// A panic in f is recovered and logged with slog at error level together with
// the stack; the stage then stops.
func Async[T1 any, T2 any](ctx context.Context, in <-chan T1, f func(ctx context.Context, t T1) T2) <-chan T2 {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan T2)
	go func() {
		defer close(out)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("stream: recovered panic", "panic", r, "stack", string(debug.Stack()))
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				res := f(ctx, v)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}
