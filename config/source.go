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

package config

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Source produces a configuration map.
type Source interface {
	Load(ctx context.Context) (map[string]any, error)
}

// File loads settings from a file path or from in-memory content.
type File struct {
	path   string
	data   []byte
	format Format
}

// NewFile returns a File reading path. An empty format is derived from the
// file extension.
func NewFile(path string, format Format) *File {
	return &File{path: path, format: format}
}

// NewContent returns a File decoding data.
func NewContent(data []byte, format Format) *File {
	return &File{data: data, format: format}
}

// Load reads and decodes the file.
func (f *File) Load(context.Context) (map[string]any, error) {
	format := f.format
	data := f.data

	if f.path != "" {
		if format == "" {
			var err error
			if format, err = FormatFromPath(f.path); err != nil {
				return nil, err
			}
		}

		var err error
		if data, err = os.ReadFile(f.path); err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
	}

	conf, err := decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %w", err)
	}

	return conf, nil
}

// Env loads settings from environment variables sharing a prefix.
// URLGEN_BASEURL with prefix "URLGEN_" becomes the key "baseurl".
// Remaining underscores nest: URLGEN_A_B becomes a.b.
type Env struct {
	prefix  string
	environ func() []string
}

// NewEnv returns an Env reading variables that start with prefix.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix, environ: os.Environ}
}

// Load collects the prefixed variables.
func (e *Env) Load(context.Context) (map[string]any, error) {
	conf := make(map[string]any)

	for _, kv := range e.environ() {
		if !strings.HasPrefix(kv, e.prefix) {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimPrefix(kv, e.prefix), "=")
		if !ok {
			continue
		}

		parts := make([]string, 0, 2)
		for part := range strings.SplitSeq(strings.ToLower(strings.TrimSpace(key)), "_") {
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			continue
		}

		current := conf
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				// a scalar in the way is replaced
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = strings.TrimSpace(value)
	}

	return conf, nil
}
