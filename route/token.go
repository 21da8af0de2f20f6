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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// Kind is the tag of a token tuple.
type Kind string

const (
	// KindText is a literal path or host segment.
	KindText Kind = "text"
	// KindVariable is a named placeholder preceded by a separator.
	KindVariable Kind = "variable"
)

// Known reports whether k is a token kind understood by URL generation.
func (k Kind) Known() bool {
	return k == KindText || k == KindVariable
}

// ErrMalformedToken indicates a token tuple with a missing or invalid element.
var ErrMalformedToken = errors.New("malformed token")

// Token is one element of a compiled route.
// Text is set for KindText; Separator, Pattern and Name are set for KindVariable.
// Tokens of any other kind keep their tag so that consumers can report it.
type Token struct {
	Kind      Kind
	Text      string
	Separator string
	Pattern   string
	Name      string
}

// Text returns a literal token.
func Text(text string) Token {
	return Token{Kind: KindText, Text: text}
}

// Variable returns a placeholder token.
// The pattern is only used when matching and is carried for completeness.
func Variable(separator, pattern, name string) Token {
	return Token{Kind: KindVariable, Separator: separator, Pattern: pattern, Name: name}
}

// String returns the token in its tuple form, for debugging.
func (t Token) String() string {
	b, err := t.MarshalJSON()
	if err != nil {
		return string(t.Kind)
	}

	return string(b)
}

// MarshalJSON encodes the token as a tuple.
func (t Token) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindVariable:
		return json.Marshal([]string{string(t.Kind), t.Separator, t.Pattern, t.Name})
	default:
		return json.Marshal([]string{string(t.Kind), t.Text})
	}
}

// UnmarshalJSON decodes a token tuple.
// Variable tuples may carry trailing elements, which are ignored.
func (t *Token) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty tuple", ErrMalformedToken)
	}

	tag, ok := raw[0].(string)
	if !ok {
		return fmt.Errorf("%w: tag must be a string, got %T", ErrMalformedToken, raw[0])
	}

	elem := func(i int) (string, error) {
		if i >= len(raw) {
			return "", fmt.Errorf("%w: %q token needs element %d", ErrMalformedToken, tag, i)
		}
		if raw[i] == nil {
			return "", nil
		}
		s, err := cast.ToStringE(raw[i])
		if err != nil {
			return "", fmt.Errorf("%w: %q token element %d: %w", ErrMalformedToken, tag, i, err)
		}
		return s, nil
	}

	tok := Token{Kind: Kind(tag)}
	switch tok.Kind {
	case KindVariable:
		var err error
		if tok.Separator, err = elem(1); err != nil {
			return err
		}
		if tok.Pattern, err = elem(2); err != nil {
			return err
		}
		if tok.Name, err = elem(3); err != nil {
			return err
		}
	case KindText:
		text, err := elem(1)
		if err != nil {
			return err
		}
		tok.Text = text
	default:
		if len(raw) > 1 {
			tok.Text, _ = elem(1)
		}
	}

	*t = tok

	return nil
}
