// Copyright 2025 The Rivaas Authors
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

package urlgen

import (
	"strconv"
	"strings"

	"rivaas.dev/urlgen/param"
)

// buildQuery flattens every parameter not in consumed into a query string,
// in parameter order. Spaces are written as "+". It also reports whether any
// parameter was left over, even one that produced no pair.
func buildQuery(params *param.Set, consumed map[string]struct{}) (string, bool) {
	var b strings.Builder

	emit := func(key string, value param.Value) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeQueryComponent(key))
		b.WriteByte('=')
		b.WriteString(escapeQueryComponent(value.Resolve().String()))
	}

	unused := false
	for name, value := range params.All() {
		if _, ok := consumed[name]; ok {
			continue
		}
		unused = true
		flatten(name, value, emit)
	}

	return b.String(), unused
}

// flatten walks nested values using bracket notation:
//
//	tags=[a b]           -> tags[]=a&tags[]=b
//	tags=[a [b c]]       -> tags[]=a&tags[1][]=b&tags[1][]=c
//	filter={size: 10}    -> filter[size]=10
//
// Scalar sequence elements get an empty bracket, composite elements their
// index. Below a key that already ends in "[]", elements are emitted as is.
func flatten(prefix string, value param.Value, emit func(string, param.Value)) {
	switch value.Kind() {
	case param.KindSequence:
		repeated := strings.HasSuffix(prefix, "[]")
		for i, item := range value.Items() {
			if repeated {
				emit(prefix, item)
				continue
			}
			index := ""
			if item.IsComposite() {
				index = strconv.Itoa(i)
			}
			flatten(prefix+"["+index+"]", item, emit)
		}
	case param.KindMapping:
		for _, p := range value.Pairs() {
			flatten(prefix+"["+p.Key+"]", p.Value, emit)
		}
	default:
		emit(prefix, value)
	}
}
