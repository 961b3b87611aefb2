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
	"context"
	"log/slog"
)

// Trace wraps p and logs every invocation on the default slog logger at
// debug level: the offset, whether p matched and how many bytes it consumed.
//
// The outcome of p is returned unchanged. When debug logging is disabled the
// wrapper only costs a level check.
func Trace[T any](label string, p Parser[T]) Parser[T] {
	return ParserFunc[T](func(in Input) Outcome[T] {
		out := p.Parse(in)
		logger := slog.Default()
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return out
		}
		if out.OK {
			logger.Debug(label, "offset", in.Offset(), "matched", true, "consumed", out.Remaining.Offset()-in.Offset(), "value", out.Value)
		} else {
			logger.Debug(label, "offset", in.Offset(), "matched", false, "near", excerpt(in))
		}
		return out
	})
}
