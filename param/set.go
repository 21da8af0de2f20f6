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

package param

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// ErrNotObject is returned by Parse when the document is not a mapping.
var ErrNotObject = errors.New("parameters must be an object")

// Set is an ordered collection of named parameters.
// A nil *Set is an empty, read-only set.
type Set struct {
	keys   []string
	values map[string]Value
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]Value)}
}

// FromMap builds a Set from m with keys in sorted order.
func FromMap(m map[string]any) *Set {
	s := NewSet()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Add(k, m[k])
	}

	return s
}

// Parse reads a JSON or YAML object into a Set, keeping key order at
// every level. An empty or null document yields an empty Set.
func Parse(data []byte) (*Set, error) {
	s := NewSet()
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("parse parameters: %w", err)
	}

	switch x := doc.(type) {
	case nil:
		return s, nil
	case yaml.MapSlice:
		for _, item := range x {
			s.Add(fmt.Sprint(item.Key), item.Value)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w, got %T", ErrNotObject, doc)
	}
}

// Add sets key to Of(v) and returns s for chaining.
// Re-adding a key replaces its value but keeps its original position.
func (s *Set) Add(key string, v any) *Set {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = Of(v)

	return s
}

// Get returns the value stored under key.
func (s *Set) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[key]

	return v, ok
}

// Has reports whether key is present, including keys holding Null.
func (s *Set) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Len returns the number of parameters.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.keys)
}

// Keys returns parameter names in insertion order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}

	return slices.Clone(s.keys)
}

// All iterates over parameters in insertion order.
func (s *Set) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of s.
func (s *Set) Clone() *Set {
	c := NewSet()
	for k, v := range s.All() {
		c.Add(k, v)
	}

	return c
}
