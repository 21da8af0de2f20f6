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
	"strings"

	"rivaas.dev/urlgen/param"
	"rivaas.dev/urlgen/route"
)

// assemblePath resolves path tokens, which are stored last segment first.
//
// Walking from the end of the path, variables stay optional until the first
// literal or rendered variable is met: only a trailing run of variables that
// all keep their defaults can be left out. Parameters used for a segment,
// and defaulted parameters left at their default, are added to consumed.
func assemblePath(routeName string, tokens []route.Token, params *param.Set, defaults map[string]param.Value, consumed map[string]struct{}) (string, error) {
	segments := make([]string, 0, len(tokens))
	optional := true

	for _, tok := range tokens {
		switch tok.Kind {
		case route.KindText:
			segments = append(segments, tok.Text)
			optional = false

		case route.KindVariable:
			def, hasDefault := defaults[tok.Name]
			supplied, isSupplied := params.Get(tok.Name)

			if optional && hasDefault && (!isSupplied || supplied.Equal(def)) {
				consumed[tok.Name] = struct{}{}
				continue
			}

			var value param.Value
			switch {
			case isSupplied:
				value = supplied
				consumed[tok.Name] = struct{}{}
			case hasDefault:
				value = def
				consumed[tok.Name] = struct{}{}
			case optional:
				continue
			default:
				return "", &MissingParameterError{Route: routeName, Param: tok.Name}
			}

			if !value.Empty() || !optional {
				segments = append(segments, tok.Separator+escapePathValue(value.String()))
			}
			optional = false

		default:
			return "", &UnsupportedTokenError{Kind: string(tok.Kind)}
		}
	}

	if len(segments) == 0 {
		return "/", nil
	}

	var b strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		b.WriteString(segments[i])
	}
	if b.Len() == 0 {
		return "/", nil
	}

	return b.String(), nil
}
