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

package route

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cast"

	"rivaas.dev/urlgen/param"
)

// SchemeRequirement is the requirement key naming the scheme a route must be served on.
const SchemeRequirement = "_scheme"

// ErrMalformedDefinition indicates a route definition that cannot be decoded.
var ErrMalformedDefinition = errors.New("malformed route definition")

// Definition is a compiled route.
//
// Tokens and HostTokens are stored in reverse emission order. Defaults map
// parameter names to the value used when the caller supplies none.
// Requirements are carried as decoded; only SchemeRequirement is consulted
// when generating URLs.
type Definition struct {
	Tokens       []Token
	HostTokens   []Token
	Defaults     map[string]param.Value
	Requirements map[string]string
}

// Default returns the default value of the named parameter.
func (d *Definition) Default(name string) (param.Value, bool) {
	v, ok := d.Defaults[name]
	return v, ok
}

// Scheme returns the scheme requirement, if any.
func (d *Definition) Scheme() (string, bool) {
	s, ok := d.Requirements[SchemeRequirement]
	return s, ok
}

// Variables returns the names of all variable tokens, path first, in
// emission order and without duplicates.
func (d *Definition) Variables() []string {
	var names []string
	for _, tokens := range [][]Token{d.Tokens, d.HostTokens} {
		for _, tok := range slices.Backward(tokens) {
			if tok.Kind == KindVariable && !slices.Contains(names, tok.Name) {
				names = append(names, tok.Name)
			}
		}
	}

	return names
}

type definitionJSON struct {
	Tokens       []Token         `json:"tokens"`
	Defaults     json.RawMessage `json:"defaults,omitempty"`
	Requirements json.RawMessage `json:"requirements,omitempty"`
	HostTokens   []Token         `json:"hosttokens"`
}

// MarshalJSON encodes the definition in the wire format.
func (d *Definition) MarshalJSON() ([]byte, error) {
	defaults := make(map[string]any, len(d.Defaults))
	for k, v := range d.Defaults {
		defaults[k] = exportValue(v)
	}
	requirements := d.Requirements
	if requirements == nil {
		requirements = map[string]string{}
	}

	defaultsJSON, err := json.Marshal(defaults)
	if err != nil {
		return nil, err
	}
	requirementsJSON, err := json.Marshal(requirements)
	if err != nil {
		return nil, err
	}

	return json.Marshal(definitionJSON{
		Tokens:       nonNil(d.Tokens),
		Defaults:     defaultsJSON,
		Requirements: requirementsJSON,
		HostTokens:   nonNil(d.HostTokens),
	})
}

// UnmarshalJSON decodes a definition from the wire format.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var wire definitionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}

	defaults, err := decodeBag(wire.Defaults)
	if err != nil {
		return fmt.Errorf("%w: defaults: %w", ErrMalformedDefinition, err)
	}
	requirements, err := decodeBag(wire.Requirements)
	if err != nil {
		return fmt.Errorf("%w: requirements: %w", ErrMalformedDefinition, err)
	}

	out := Definition{
		Tokens:       wire.Tokens,
		HostTokens:   wire.HostTokens,
		Defaults:     make(map[string]param.Value, len(defaults)),
		Requirements: make(map[string]string, len(requirements)),
	}
	for k, v := range defaults {
		out.Defaults[k] = param.Of(v)
	}
	for k, v := range requirements {
		s, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("%w: requirement %q: %w", ErrMalformedDefinition, k, err)
		}
		out.Requirements[k] = s
	}

	*d = out

	return nil
}

// decodeBag decodes an object that PHP serializers emit as [] when empty.
func decodeBag(raw json.RawMessage) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		var list []any
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		if len(list) > 0 {
			return nil, fmt.Errorf("expected an object, got a list of %d elements", len(list))
		}
		return nil, nil
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// exportValue converts a parameter value back into plain JSON-encodable data.
func exportValue(v param.Value) any {
	v = v.Resolve()
	switch v.Kind() {
	case param.KindScalar:
		return v.Raw()
	case param.KindSequence:
		out := make([]any, len(v.Items()))
		for i, item := range v.Items() {
			out[i] = exportValue(item)
		}
		return out
	case param.KindMapping:
		out := make(map[string]any, len(v.Pairs()))
		for _, p := range v.Pairs() {
			out[p.Key] = exportValue(p.Value)
		}
		return out
	default:
		return nil
	}
}

func nonNil(tokens []Token) []Token {
	if tokens == nil {
		return []Token{}
	}

	return tokens
}

// Clone returns a deep copy of d's token slices and maps.
func (d *Definition) Clone() *Definition {
	return &Definition{
		Tokens:       slices.Clone(d.Tokens),
		HostTokens:   slices.Clone(d.HostTokens),
		Defaults:     maps.Clone(d.Defaults),
		Requirements: maps.Clone(d.Requirements),
	}
}
