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
	"bufio"
	"context"
	"io"
	"sync"
	"time"
)

// Reader scans an io.Reader into Line items.
//
// Tokenization is controlled by a bufio.SplitFunc (default: ScanLines). Each
// token becomes a Line whose Index is the token sequence number and whose
// Text and Value are the token itself.
//
// The scanner yields bytes as-is and assumes UTF-8 text.
//
// Usage pattern:
//
//	r := NewReader(file)
//	r.SetContext(ctx)      // optional, must be called before Start
//	r.SetSplitFunc(...)    // optional, must be called before Start
//	for line := range r.Start() { /* ... */ }
//	if err := r.Err(); err != nil { /* scanning failed */ }
//
// Stop cancels the context, which makes the scanning goroutine and every
// stage sharing the context exit promptly.
type Reader struct {
	reader    io.Reader
	splitFunc bufio.SplitFunc

	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

// NewReader returns a Reader scanning r line by line.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		reader:    r,
		splitFunc: ScanLines,
	}
}

// SetContext sets the base context used by Start.
//
// The provided context is wrapped in a cancellable child so that Stop can
// terminate the scan even if the parent context is still alive.
func (r *Reader) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(ctx)
}

// SetSplitFunc customizes the tokenization strategy.
func (r *Reader) SetSplitFunc(splitFunc bufio.SplitFunc) {
	r.splitFunc = splitFunc
}

// Context returns the context the Reader runs with, so that downstream stages
// can share its lifetime. It is only meaningful after Start.
func (r *Reader) Context() context.Context {
	r.ensureContext()
	return r.ctx
}

func (r *Reader) ensureContext() {
	switch {
	case r.ctx == nil:
		r.ctx, r.cancel = context.WithCancel(context.Background())
	case r.cancel == nil:
		r.ctx, r.cancel = context.WithCancel(r.ctx)
	}
}

// Start scans the input in a goroutine and returns the channel of lines.
//
// Scanning stops at EOF, on a read error (see Err) or when the context is
// done. The returned channel is closed in every case.
func (r *Reader) Start() <-chan Line {
	r.ensureContext()
	ctx := r.ctx

	scanner := bufio.NewScanner(r.reader)
	if r.splitFunc != nil {
		scanner.Split(r.splitFunc)
	}

	out := make(chan Line)
	go func() {
		defer close(out)

		counter := 0
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if !scanner.Scan() {
				r.setErr(scanner.Err())
				return
			}

			text := scanner.Text()
			line := Line{Index: counter, Text: text, Value: text}
			counter++

			select {
			case <-ctx.Done():
				return
			case out <- line:
			}
		}
	}()
	return out
}

// StartWithTimeout is like Start but cancels the context once timeout has
// elapsed. A timeout <= 0 is the same as Start.
//
// The timeout context is derived from the current one, and Stop releases
// both.
func (r *Reader) StartWithTimeout(timeout time.Duration) <-chan Line {
	if timeout <= 0 {
		return r.Start()
	}
	r.ensureContext()
	parentCancel := r.cancel
	ctx, cancel := context.WithTimeout(r.ctx, timeout)
	r.ctx = ctx
	r.cancel = func() {
		cancel()
		parentCancel()
	}
	return r.Start()
}

// Stop cancels the current context, if any.
func (r *Reader) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

// Err returns the error that interrupted scanning, nil on a clean EOF.
// It is only meaningful once the channel returned by Start is closed.
func (r *Reader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Reader) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}
