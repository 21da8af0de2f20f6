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
	"context"
	"log/slog"
	"strings"

	"rivaas.dev/urlgen/param"
	"rivaas.dev/urlgen/route"
)

// MissingHostValue is inserted into the host for a host variable that has
// neither a supplied value nor a default. Such a host is almost certainly
// wrong; a DiagHostParamMissing diagnostic is emitted alongside.
const MissingHostValue = "undefined"

// NullHostValue is inserted into the host for a host variable whose value is null.
const NullHostValue = "null"

// assembleHost resolves host tokens, stored last label first.
// Host values are inserted as given, without escaping.
func (g *Generator) assembleHost(ctx context.Context, routeName string, tokens []route.Token, params *param.Set, defaults map[string]param.Value, consumed map[string]struct{}) string {
	if len(tokens) == 0 {
		return ""
	}

	labels := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		switch tok.Kind {
		case route.KindText:
			labels = append(labels, tok.Text)

		case route.KindVariable:
			var value string
			if v, ok := params.Get(tok.Name); ok {
				value = hostValue(v)
				consumed[tok.Name] = struct{}{}
			} else if v, ok := defaults[tok.Name]; ok {
				value = hostValue(v)
			} else {
				value = MissingHostValue
				g.diagnose(ctx, slog.LevelWarn, DiagHostParamMissing, "host parameter has no value and no default", map[string]any{
					"route": routeName,
					"param": tok.Name,
				})
			}
			labels = append(labels, tok.Separator+value)

		default:
			g.diagnose(ctx, slog.LevelWarn, DiagHostTokenSkipped, "unsupported host token skipped", map[string]any{
				"route": routeName,
				"kind":  string(tok.Kind),
				"index": i,
			})
		}
	}

	var b strings.Builder
	for i := len(labels) - 1; i >= 0; i-- {
		b.WriteString(labels[i])
	}

	return b.String()
}

// hostValue renders a host value. Host values are not escaped or checked,
// so a null value is written as NullHostValue rather than dropped.
func hostValue(v param.Value) string {
	if v.Resolve().IsNull() {
		return NullHostValue
	}

	return v.String()
}
