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
	"fmt"
	"sort"

	"github.com/benoit-pereira-da-silva/parsec/pkg/parse"
)

// Named exposes the grammars of this package behind a uniform string value so
// that tools can pick one by name.
//
// Each entry parses a whole text and renders the parsed value with fmt.
var Named = map[string]parse.Parser[string]{
	"arithmetic": render(Arithmetic()),
	"balanced":   render(Balanced()),
	"number":     Number(),
	"word":       render(Word()),
}

// Names returns the keys of Named, sorted.
func Names() []string {
	names := make([]string, 0, len(Named))
	for name := range Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the grammar registered under name.
func Lookup(name string) (parse.Parser[string], bool) {
	p, ok := Named[name]
	return p, ok
}

func render[T any](p parse.Parser[T]) parse.Parser[string] {
	return parse.Map(p, func(v T) string {
		return fmt.Sprint(v)
	})
}
