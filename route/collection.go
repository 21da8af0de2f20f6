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
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidDocument indicates a route collection that does not match the document schema.
var ErrInvalidDocument = errors.New("invalid route document")

//go:embed schema.json
var documentSchema []byte

const documentSchemaName = "urlgen-routes.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(documentSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(documentSchemaName, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(documentSchemaName)
})

// Collection is a route document: the routes plus the request context they
// were dumped with.
type Collection struct {
	BaseURL string `json:"base_url"`
	Prefix  string `json:"prefix,omitempty"`
	Host    string `json:"host,omitempty"`
	Scheme  string `json:"scheme,omitempty"`
	Routes  *Table `json:"routes"`
}

// ValidateDocument checks a JSON route document against the document schema.
func ValidateDocument(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile route document schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err = schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// DecodeJSON validates and decodes a JSON route document.
func DecodeJSON(data []byte) (*Collection, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Routes == nil {
		c.Routes = NewTable()
	}

	return &c, nil
}

// DecodeYAML converts a YAML route document to JSON, keeping key order,
// then decodes it with DecodeJSON.
func DecodeYAML(data []byte) (*Collection, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return DecodeJSON(jsonData)
}
