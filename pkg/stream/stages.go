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

	"github.com/benoit-pereira-da-silva/parsec/pkg/parse"
	"github.com/pkg/errors"
)

// Parse runs p to completion (see parse.Run) on the Text of every line.
//
// A line that matches yields an item with the parsed Value. A line that does
// not yields an item carrying the parse error, annotated with its line
// number (1-based). Items that already carry an error are forwarded with
// that error and left unparsed.
func Parse[T any](ctx context.Context, in <-chan Line, p parse.Parser[T]) <-chan Item[T] {
	return Async(ctx, in, func(_ context.Context, line Line) Item[T] {
		item := Item[T]{Index: line.Index, Text: line.Text}
		if line.Err != nil {
			return item.WithError(line.Err)
		}
		v, err := parse.Run(p, line.Text)
		if err != nil {
			return item.WithError(errors.WithMessagef(err, "line %d", line.Index+1))
		}
		item.Value = v
		return item
	})
}

// Filter is a processor forwarding only the items accepted by keep.
func Filter[S any](keep func(S) bool) ProcessorFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		out := make(chan S)
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					if !keep(item) {
						continue
					}
					select {
					case <-ctx.Done():
						return
					case out <- item:
					}
				}
			}
		}()
		return out
	}
}

// OnlyFailed is a Filter keeping the items that carry an error.
func OnlyFailed[T any]() ProcessorFunc[Item[T]] {
	return Filter(Item[T].Failed)
}

// Slog is a processor that logs every item with its index: failed items at
// error level, the others at info level.
func Slog[T any](label string) ProcessorFunc[Item[T]] {
	return func(ctx context.Context, in <-chan Item[T]) <-chan Item[T] {
		return Async(ctx, in, func(_ context.Context, item Item[T]) Item[T] {
			if item.Err != nil {
				slog.Error(label, "err", item.Err, "index", item.Index, "text", item.Text)
			} else {
				slog.Info(label, "index", item.Index, "text", item.Text, "value", item.Value)
			}
			return item
		})
	}
}
