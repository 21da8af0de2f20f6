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
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/urlgen"
	"rivaas.dev/urlgen/route"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "urlgen.yaml",
			content: `
baseurl: /app
host: example.com
scheme: https
absolute: true
`,
		},
		{
			name: "toml",
			file: "urlgen.toml",
			content: `
baseurl = "/app"
host = "example.com"
scheme = "https"
absolute = true
`,
		},
		{
			name:    "json",
			file:    "urlgen.json",
			content: `{"baseurl": "/app", "host": "example.com", "scheme": "https", "absolute": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Load(context.Background(), WithFile(writeFile(t, tt.file, tt.content)))
			require.NoError(t, err)

			assert.Equal(t, &Settings{
				BaseURL:  "/app",
				Host:     "example.com",
				Scheme:   "https",
				Absolute: true,
			}, s)
		})
	}
}

func TestLoad_LaterSourcesOverride(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(),
		WithContent([]byte("host: a.example.com\nscheme: http\nBaseURL: /one\n"), FormatYAML),
		WithContent([]byte(`{"HOST": "b.example.com"}`), FormatJSON),
	)
	require.NoError(t, err)

	assert.Equal(t, "b.example.com", s.Host)
	assert.Equal(t, "http", s.Scheme)
	assert.Equal(t, "/one", s.BaseURL)
}

func TestLoad_WeakTyping(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(), WithContent([]byte(`{"absolute": "true"}`), FormatJSON))
	require.NoError(t, err)

	assert.True(t, s.Absolute)
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)

	s, err = Load(context.Background(), WithContent(nil, FormatJSON))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []Option
		source    string
		operation string
	}{
		{
			name:      "missing file",
			opts:      []Option{WithFile(filepath.Join(t.TempDir(), "absent.yaml"))},
			source:    "source[0]",
			operation: "load",
		},
		{
			name:      "unknown extension",
			opts:      []Option{WithFile("urlgen.ini")},
			source:    "source[0]",
			operation: "load",
		},
		{
			name:      "malformed content",
			opts:      []Option{WithContent(nil, FormatJSON), WithContent([]byte("{"), FormatJSON)},
			source:    "source[1]",
			operation: "load",
		},
		{
			name:      "wrong type",
			opts:      []Option{WithContent([]byte("host: [a, b]"), FormatYAML)},
			source:    "schema",
			operation: "validate",
		},
		{
			name:      "bad scheme",
			opts:      []Option{WithContent([]byte(`scheme = "1http"`), FormatTOML)},
			source:    "schema",
			operation: "validate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(context.Background(), tt.opts...)
			require.Error(t, err)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.source, cfgErr.Source)
			assert.Equal(t, tt.operation, cfgErr.Operation)
		})
	}
}

func TestLoad_UnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), WithFile("urlgen.ini"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, WithContent([]byte("{}"), FormatJSON))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_NilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is the case under test
	_, err := Load(nil)
	require.Error(t, err)
}

func TestEnv(t *testing.T) {
	t.Parallel()

	env := &Env{
		prefix: "URLGEN_",
		environ: func() []string {
			return []string{
				"URLGEN_HOST=example.com",
				"URLGEN_SCHEME= https ",
				"URLGEN_NESTED_KEY=v",
				"URLGEN_=ignored",
				"URLGEN_BROKEN",
				"OTHER_HOST=nope",
			}
		},
	}

	conf, err := env.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"host":   "example.com",
		"scheme": "https",
		"nested": map[string]any{"key": "v"},
	}, conf)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("URLGENTEST_HOST", "env.example.com")
	t.Setenv("URLGENTEST_ABSOLUTE", "1")

	s, err := Load(context.Background(),
		WithContent([]byte("host: file.example.com\nscheme: https\n"), FormatYAML),
		WithEnv("URLGENTEST_"),
	)
	require.NoError(t, err)

	assert.Equal(t, "env.example.com", s.Host)
	assert.Equal(t, "https", s.Scheme)
	assert.True(t, s.Absolute)
}

func TestSettings_Level(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelInfo, (&Settings{}).Level())
	assert.Equal(t, slog.LevelDebug, (&Settings{LogLevel: "debug"}).Level())
	assert.Equal(t, slog.LevelWarn, (&Settings{LogLevel: "WARN"}).Level())
	assert.Equal(t, slog.LevelInfo, (&Settings{LogLevel: "loud"}).Level())
}

func TestSettings_OptionsOverrideCollection(t *testing.T) {
	t.Parallel()

	coll := &route.Collection{
		BaseURL: "/from-doc",
		Host:    "doc.example.com",
		Scheme:  "http",
		Routes:  route.NewTable().Add("home", &route.Definition{Tokens: []route.Token{route.Text("/")}}),
	}
	s := &Settings{Host: "cfg.example.com", Scheme: "https"}

	g := urlgen.NewFromCollection(coll, s.Options()...)

	assert.Equal(t, urlgen.RequestContext{
		BasePath: "/from-doc",
		Host:     "cfg.example.com",
		Scheme:   "https",
	}, g.RequestContext())
	assert.Equal(t, "https://cfg.example.com/from-doc/", g.MustGenerate("home", nil, urlgen.Absolute()))
}

func TestError(t *testing.T) {
	t.Parallel()

	inner := errors.New("boom")
	err := NewError("source[2]", "merge", inner)

	assert.Equal(t, "config error in source[2] during merge: boom", err.Error())
	require.ErrorIs(t, err, inner)
}
