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

import "context"

// Processor is a chainable stage that keeps the item type.
//
// Implementations are expected to:
//
//   - Read zero or more values from the input channel.
//   - Produce zero or more values on the returned channel.
//   - Respect ctx.Done() and stop processing promptly when the context is
//     canceled.
//   - Close the returned channel when processing is complete or when the
//     context is canceled.
//   - Never close the input channel; the upstream stage owns it.
//
// The returned channel must be non-nil.
type Processor[S any] interface {
	Apply(ctx context.Context, in <-chan S) <-chan S
}

// ProcessorFunc is a function adapter that implements Processor.
type ProcessorFunc[S any] func(ctx context.Context, in <-chan S) <-chan S

// Apply calls f(ctx, in).
// A nil ProcessorFunc forwards its input unchanged.
func (f ProcessorFunc[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	if f == nil {
		return in
	}
	return f(ctx, in)
}

// Chain composes processors after f: the output of f feeds p[0], whose
// output feeds p[1], and so on. Nil processors are ignored.
func (f ProcessorFunc[S]) Chain(p ...Processor[S]) ProcessorFunc[S] {
	if len(p) == 0 {
		return f
	}
	return NewChain[S](append([]Processor[S]{f}, p...)...).Apply
}

// Chain is a Processor that runs multiple processors sequentially.
//
//	chain := NewChain[stream.Item[int]](stream.Slog[int]("parsed"), stream.Filter(keep))
//	out := chain.Apply(ctx, parsed)
//
// Nil processors are ignored.
type Chain[S any] struct {
	processors []Processor[S]
}

// NewChain returns a Chain running processors in order.
func NewChain[S any](processors ...Processor[S]) *Chain[S] {
	return &Chain[S]{
		processors: processors,
	}
}

// Apply implements Processor.
//
// The same context is passed to every stage. With no processor, the input
// channel is returned unchanged.
func (c *Chain[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	out := in
	for _, p := range c.processors {
		if p == nil {
			continue
		}
		out = p.Apply(ctx, out)
	}
	return out
}
