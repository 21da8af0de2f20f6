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
	"iter"
	"slices"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrUnknownTokenKind indicates a token whose tag is neither "text" nor "variable".
	ErrUnknownTokenKind = errors.New("unknown token kind")

	// ErrUnnamedVariable indicates a variable token without a name.
	ErrUnnamedVariable = errors.New("variable token has no name")

	// ErrNilDefinition indicates a table entry without a definition.
	ErrNilDefinition = errors.New("route definition is nil")
)

// Table is an ordered mapping from route name to definition.
//
// A Table is built once and then shared. Freeze marks it read-only; any
// later Add panics. Readers may use a frozen Table from multiple goroutines.
type Table struct {
	names  []string
	defs   map[string]*Definition
	frozen atomic.Bool
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{defs: make(map[string]*Definition)}
}

// Add registers def under name and returns t for chaining.
// Re-adding a name replaces the definition but keeps its position.
// Add panics if t is frozen.
func (t *Table) Add(name string, def *Definition) *Table {
	if t.frozen.Load() {
		panic(fmt.Sprintf("route table is frozen; cannot add route %q", name))
	}
	if t.defs == nil {
		t.defs = make(map[string]*Definition)
	}
	if _, ok := t.defs[name]; !ok {
		t.names = append(t.names, name)
	}
	t.defs[name] = def

	return t
}

// Freeze makes t read-only. It is safe to call more than once.
func (t *Table) Freeze() {
	t.frozen.Store(true)
}

// Frozen reports whether t is read-only.
func (t *Table) Frozen() bool {
	return t.frozen.Load()
}

// Get returns the definition registered under name.
func (t *Table) Get(name string) (*Definition, bool) {
	if t == nil {
		return nil, false
	}
	def, ok := t.defs[name]

	return def, ok
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Len returns the number of routes.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.names)
}

// Names returns route names in registration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.names)
}

// All iterates over routes in registration order.
func (t *Table) All() iter.Seq2[string, *Definition] {
	return func(yield func(string, *Definition) bool) {
		if t == nil {
			return
		}
		for _, name := range t.names {
			if !yield(name, t.defs[name]) {
				return
			}
		}
	}
}

// Validate checks every definition and returns all problems found,
// combined with go-multierror. It returns nil for a valid table.
func (t *Table) Validate() error {
	var result *multierror.Error

	for name, def := range t.All() {
		if def == nil {
			result = multierror.Append(result, fmt.Errorf("route %q: %w", name, ErrNilDefinition))
			continue
		}
		for i, tok := range def.Tokens {
			if err := validateToken(tok); err != nil {
				result = multierror.Append(result, fmt.Errorf("route %q: token %d: %w", name, i, err))
			}
		}
		for i, tok := range def.HostTokens {
			if err := validateToken(tok); err != nil {
				result = multierror.Append(result, fmt.Errorf("route %q: host token %d: %w", name, i, err))
			}
		}
	}

	return result.ErrorOrNil()
}

func validateToken(tok Token) error {
	if !tok.Kind.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownTokenKind, tok.Kind)
	}
	if tok.Kind == KindVariable && tok.Name == "" {
		return ErrUnnamedVariable
	}

	return nil
}

// MarshalJSON encodes the table as an object keyed by route name, in order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range t.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		def, err := json.Marshal(t.defs[name])
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(def)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of route definitions, keeping document order.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		// An empty PHP array stands for an empty table.
		if delim == '[' {
			if end, err := dec.Token(); err == nil && end == json.Delim(']') {
				t.names = nil
				t.defs = make(map[string]*Definition)
				return nil
			}
		}
		return fmt.Errorf("%w: routes must be an object", ErrMalformedDefinition)
	}

	out := NewTable()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := keyTok.(string)

		var def Definition
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("route %q: %w", name, err)
		}
		out.Add(name, &def)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	t.names = out.names
	t.defs = out.defs

	return nil
}
