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
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/urlgen"
)

//go:embed schema.json
var settingsSchema []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(settingsSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("urlgen-settings.json", doc); err != nil {
		return nil, err
	}

	return compiler.Compile("urlgen-settings.json")
})

// Settings configures a generator and the tooling around it.
type Settings struct {
	// Routes is the path of a route document.
	Routes string `config:"routes"`

	BaseURL string `config:"baseurl"`
	Prefix  string `config:"prefix"`
	Host    string `config:"host"`
	Scheme  string `config:"scheme"`

	// Absolute makes generated URLs absolute by default.
	Absolute bool `config:"absolute"`

	LogLevel  string `config:"loglevel"`
	LogFormat string `config:"logformat"` // "text" or "json"
}

// Options returns generator options for every non-empty request context
// field. Applied after a route collection seed, they override it.
func (s *Settings) Options() []urlgen.Option {
	var opts []urlgen.Option
	if s.BaseURL != "" {
		opts = append(opts, urlgen.WithBasePath(s.BaseURL))
	}
	if s.Prefix != "" {
		opts = append(opts, urlgen.WithNamePrefix(s.Prefix))
	}
	if s.Host != "" {
		opts = append(opts, urlgen.WithHost(s.Host))
	}
	if s.Scheme != "" {
		opts = append(opts, urlgen.WithScheme(s.Scheme))
	}

	return opts
}

// Level returns the configured log level, defaulting to info.
func (s *Settings) Level() slog.Level {
	var level slog.Level
	if s.LogLevel == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Option adds a source to Load.
type Option func(*loader)

type loader struct {
	sources []Source
}

// WithSource adds a custom source.
func WithSource(src Source) Option {
	return func(l *loader) {
		l.sources = append(l.sources, src)
	}
}

// WithFile adds a file whose format is taken from its extension.
func WithFile(path string) Option {
	return WithSource(NewFile(path, ""))
}

// WithFileAs adds a file decoded as format.
func WithFileAs(path string, format Format) Option {
	return WithSource(NewFile(path, format))
}

// WithContent adds in-memory content decoded as format.
func WithContent(data []byte, format Format) Option {
	return WithSource(NewContent(data, format))
}

// WithEnv adds environment variables starting with prefix.
func WithEnv(prefix string) Option {
	return WithSource(NewEnv(prefix))
}

// Load merges all sources in order, validates the result and decodes it
// into Settings.
//
// Errors:
//   - *Error if a source fails to load or merge
//   - *Error if the merged values fail validation or binding
func Load(ctx context.Context, opts ...Option) (*Settings, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}

	var l loader
	for _, opt := range opts {
		opt(&l)
	}

	values := make(map[string]any)
	for i, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		conf, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		if conf == nil {
			continue
		}

		if err = mergo.Map(&values, normalizeKeys(conf), mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, NewError("schema", "compile", err)
	}
	if err = schema.Validate(values); err != nil {
		return nil, NewError("schema", "validate", err)
	}

	var s Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return nil, NewError("binding", "bind", err)
	}
	if err = decoder.Decode(values); err != nil {
		return nil, NewError("binding", "bind", err)
	}

	return &s, nil
}

// normalizeKeys lowercases keys recursively so sources merge case-insensitively.
func normalizeKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeKeys(nested)
		}
		out[strings.ToLower(k)] = v
	}

	return out
}
