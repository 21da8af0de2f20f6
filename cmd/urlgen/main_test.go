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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/urlgen"
	"rivaas.dev/urlgen/config"
	"rivaas.dev/urlgen/route"
)

const routesJSON = `{
	"base_url": "",
	"prefix": "",
	"host": "example.com",
	"scheme": "http",
	"routes": {
		"blog_show": {
			"tokens": [["variable", "/", "[^/]++", "slug"], ["text", "/blog"]],
			"defaults": [],
			"requirements": [],
			"hosttokens": []
		},
		"secure": {
			"tokens": [["text", "/login"]],
			"defaults": [],
			"requirements": {"_scheme": "https"},
			"hosttokens": []
		}
	}
}`

const routesYAML = `
host: example.com
scheme: http
routes:
  page:
    tokens:
      - [variable, "/", "\\d+", page]
      - [text, /pages]
    defaults: {page: 1}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	routes := writeFile(t, "routes.json", routesJSON)
	yamlRoutes := writeFile(t, "routes.yaml", routesYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "path parameter",
			args: []string{"generate", "blog_show", "--routes", routes, "--param", "slug=hello world"},
			want: "/blog/hello%20world\n",
		},
		{
			name: "params object keeps order",
			args: []string{"generate", "blog_show", "--routes", routes, "--params", `{"slug": "a", "z": 1, "tags": ["x", "y"]}`},
			want: "/blog/a?z=1&tags%5B%5D=x&tags%5B%5D=y\n",
		},
		{
			name: "param flag overrides params object",
			args: []string{"generate", "blog_show", "--routes", routes, "--params", "slug: a", "-p", "slug=b"},
			want: "/blog/b\n",
		},
		{
			name: "absolute",
			args: []string{"generate", "blog_show", "--routes", routes, "-p", "slug=x", "--absolute"},
			want: "http://example.com/blog/x\n",
		},
		{
			name: "scheme requirement",
			args: []string{"generate", "secure", "--routes", routes},
			want: "https://example.com/login\n",
		},
		{
			name: "yaml document with default",
			args: []string{"generate", "page", "--routes", yamlRoutes},
			want: "/pages\n",
		},
		{
			name: "yaml document with changed default",
			args: []string{"generate", "page", "--routes", yamlRoutes, "-p", "page=2"},
			want: "/pages/2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	t.Parallel()

	routes := writeFile(t, "routes.json", routesJSON)
	cfg := writeFile(t, "urlgen.toml", `
routes = "`+filepath.ToSlash(routes)+`"
baseurl = "/app"
host = "cdn.example.com"
absolute = true
`)

	out, _, err := execute(t, "generate", "blog_show", "--config", cfg, "-p", "slug=x")
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.example.com/app/blog/x\n", out)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	routes := writeFile(t, "routes.json", routesJSON)

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "generate", "nope", "--routes", routes)
		require.ErrorIs(t, err, urlgen.ErrRouteNotFound)
	})

	t.Run("missing parameter", func(t *testing.T) {
		t.Parallel()

		doc := writeFile(t, "edit.json", `{"routes": {"edit": {"tokens": [["text", "/edit"], ["variable", "/", "", "id"], ["text", "/posts"]]}}}`)
		_, _, err := execute(t, "generate", "edit", "--routes", doc)
		require.ErrorIs(t, err, urlgen.ErrMissingRouteParameter)
	})

	t.Run("malformed param", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "generate", "blog_show", "--routes", routes, "-p", "slug")
		require.ErrorContains(t, err, "expected key=value")
	})

	t.Run("params not an object", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "generate", "blog_show", "--routes", routes, "--params", "[1, 2]")
		require.Error(t, err)
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "generate", "blog_show", "--routes", filepath.Join(t.TempDir(), "absent.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid document", func(t *testing.T) {
		t.Parallel()

		bad := writeFile(t, "bad.json", `{"routes": {"r": {"tokens": "nope"}}}`)
		_, _, err := execute(t, "generate", "r", "--routes", bad)
		require.ErrorIs(t, err, route.ErrInvalidDocument)
	})

	t.Run("name required", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "generate", "--routes", routes)
		require.Error(t, err)
	})
}

func TestGenerate_NoRoutes(t *testing.T) {
	t.Setenv("URLGEN_ROUTES", "")

	_, _, err := execute(t, "generate", "x")
	require.ErrorIs(t, err, errNoRoutes)
}

func TestGenerate_EnvOverridesConfig(t *testing.T) {
	routes := writeFile(t, "routes.json", routesJSON)
	cfg := writeFile(t, "urlgen.yaml", "routes: "+filepath.ToSlash(routes)+"\nhost: file.example.com\n")
	t.Setenv("URLGEN_HOST", "env.example.com")

	out, _, err := execute(t, "generate", "blog_show", "--config", cfg, "-p", "slug=x", "-a")
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/blog/x\n", out)
}

func TestGenerate_Trace(t *testing.T) {
	t.Parallel()

	routes := writeFile(t, "routes.json", routesJSON)

	out, errOut, err := execute(t, "generate", "blog_show", "--routes", routes, "-p", "slug=x", "--trace")
	require.NoError(t, err)
	assert.Equal(t, "/blog/x\n", out)
	assert.Contains(t, errOut, `"Name": "urlgen.Generate"`)
	assert.Contains(t, errOut, "urlgen.route")
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	routes := writeFile(t, "routes.json", routesJSON)

	out, _, err := execute(t, "routes", "--routes", routes)
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Regexp(t, `blog_show\s+/blog/\{slug\}`, out)
	assert.Regexp(t, `secure\s+/login`, out)
}

func TestPattern(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/blog/{slug}.{_format}", pattern([]route.Token{
		route.Variable(".", "", "_format"),
		route.Variable("/", "", "slug"),
		route.Text("/blog"),
	}))
	assert.Equal(t, "{tenant}.example.com", pattern([]route.Token{
		route.Text(".example.com"),
		route.Variable("", "", "tenant"),
	}))
	assert.Equal(t, "/x<regex>", pattern([]route.Token{{Kind: "regex"}, route.Text("/x")}))
	assert.Empty(t, pattern(nil))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		routes := writeFile(t, "routes.json", routesJSON)
		out, _, err := execute(t, "validate", "--routes", routes)
		require.NoError(t, err)
		assert.Contains(t, out, "2 routes ok")
	})

	t.Run("reports every problem", func(t *testing.T) {
		t.Parallel()

		bad := writeFile(t, "bad.json", `{"routes": {
			"a": {"tokens": [["regex", "x"]]},
			"b": {"tokens": [["variable", "/", "", ""]]}
		}}`)
		_, _, err := execute(t, "validate", "--routes", bad)
		require.ErrorIs(t, err, route.ErrUnknownTokenKind)
		require.ErrorIs(t, err, route.ErrUnnamedVariable)
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go version:")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, &config.Settings{LogFormat: logFormatJSON, LogLevel: "debug"}).Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger(&buf, &config.Settings{}).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, &config.Settings{}).Info("shown", "k", "v")
	assert.Contains(t, buf.String(), "msg=shown k=v")
}

func TestGenerate_DebugLogging(t *testing.T) {
	t.Parallel()

	routes := writeFile(t, "routes.json", routesJSON)
	cfg := writeFile(t, "urlgen.json", `{"loglevel": "debug", "logformat": "json"}`)

	_, errOut, err := execute(t, "generate", "blog_show", "--routes", routes, "--config", cfg, "-p", "slug=x")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"url generated"`)
	assert.Contains(t, errOut, `"route":"blog_show"`)
}
