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
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"rivaas.dev/urlgen/param"
	"rivaas.dev/urlgen/route"
)

// Generator builds URLs from named route definitions.
//
// A Generator is safe for concurrent use. The route table is swapped
// wholesale and the request context is copy-on-write, so every Generate
// call reads one consistent snapshot of both.
type Generator struct {
	routes atomic.Pointer[route.Table]
	reqCtx atomic.Pointer[RequestContext]
	ctxMu  sync.Mutex // serializes request context writers

	logger      *slog.Logger
	diagnostics DiagnosticHandler
	metrics     *metrics
	tracer      trace.Tracer
}

// New returns a Generator serving routes. A nil table behaves as an empty one.
// The table is frozen; it must not be modified afterwards.
func New(routes *route.Table, opts ...Option) *Generator {
	g := &Generator{
		logger: slog.New(slog.DiscardHandler),
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
	g.reqCtx.Store(&RequestContext{})
	g.SetRoutes(routes)

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewFromCollection returns a Generator serving c.Routes with a request
// context seeded from the collection. Options are applied afterwards and
// may override those values.
func NewFromCollection(c *route.Collection, opts ...Option) *Generator {
	seeded := RequestContext{
		BasePath:   c.BaseURL,
		NamePrefix: c.Prefix,
		Host:       c.Host,
		Scheme:     c.Scheme,
	}

	return New(c.Routes, append([]Option{WithRequestContext(seeded)}, opts...)...)
}

// Routes returns the current route table.
func (g *Generator) Routes() *route.Table {
	return g.routes.Load()
}

// SetRoutes replaces the route table. The table is frozen.
func (g *Generator) SetRoutes(routes *route.Table) {
	if routes == nil {
		routes = route.NewTable()
	}
	routes.Freeze()
	g.routes.Store(routes)
}

// Route returns the definition that Generate would use for name.
// The name prefix of the request context is tried first.
func (g *Generator) Route(name string) (*route.Definition, error) {
	return g.lookup(context.Background(), g.Routes(), g.RequestContext(), name)
}

func (g *Generator) lookup(ctx context.Context, routes *route.Table, rc RequestContext, name string) (*route.Definition, error) {
	prefixed := rc.NamePrefix + name
	if def, ok := routes.Get(prefixed); ok && def != nil {
		return def, nil
	}

	def, ok := routes.Get(name)
	if !ok || def == nil {
		return nil, &RouteNotFoundError{Name: name}
	}
	if rc.NamePrefix != "" {
		g.diagnose(ctx, slog.LevelDebug, DiagRoutePrefixFallback, "prefixed route not found, using bare name", map[string]any{
			"route":    name,
			"prefixed": prefixed,
		})
	}

	return def, nil
}

// Generate returns the URL of the named route.
//
// Parameters consumed by path or host variables are substituted; all others
// are appended as a query string. The URL is relative unless the route
// requires another scheme or host than the request context, or Absolute is
// given.
//
// Errors:
//   - *RouteNotFoundError if the route does not exist
//   - *MissingParameterError if a required path parameter has no value
//   - *UnsupportedTokenError if a path token has an unknown kind
func (g *Generator) Generate(name string, params *param.Set, opts ...GenerateOption) (string, error) {
	return g.GenerateContext(context.Background(), name, params, opts...)
}

// GenerateContext is Generate with a context for tracing and logging.
func (g *Generator) GenerateContext(ctx context.Context, name string, params *param.Set, opts ...GenerateOption) (string, error) {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rc := g.RequestContext()
	if cfg.reqCtx != nil {
		rc = *cfg.reqCtx
	}

	ctx, span := g.startSpan(ctx, name, cfg.absolute)
	defer span.End()

	url, form, err := g.generate(ctx, g.Routes(), rc, name, params, cfg.absolute)
	g.observe(ctx, span, name, form, err)
	if err != nil {
		return "", err
	}

	return url, nil
}

// MustGenerate is like Generate but panics on error.
func (g *Generator) MustGenerate(name string, params *param.Set, opts ...GenerateOption) string {
	url, err := g.Generate(name, params, opts...)
	if err != nil {
		panic(fmt.Sprintf("MustGenerate failed: %v", err))
	}

	return url
}

// generate is the whole algorithm over one snapshot of routes and context.
func (g *Generator) generate(ctx context.Context, routes *route.Table, rc RequestContext, name string, params *param.Set, absolute bool) (string, Form, error) {
	def, err := g.lookup(ctx, routes, rc, name)
	if err != nil {
		return "", "", err
	}

	consumed := make(map[string]struct{}, params.Len())

	path, err := assemblePath(name, def.Tokens, params, def.Defaults, consumed)
	if err != nil {
		return "", "", err
	}
	host := g.assembleHost(ctx, name, def.HostTokens, params, def.Defaults, consumed)

	var b strings.Builder
	form := writeBase(&b, def, rc, host, absolute)
	b.WriteString(rc.BasePath)
	b.WriteString(path)

	if query, unused := buildQuery(params, consumed); unused {
		b.WriteByte('?')
		b.WriteString(query)
	}

	return b.String(), form, nil
}

func (g *Generator) diagnose(ctx context.Context, level slog.Level, kind DiagnosticKind, msg string, fields map[string]any) {
	if g.diagnostics != nil {
		g.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: msg, Fields: fields})
	}

	attrs := make([]any, 0, 2+2*len(fields))
	attrs = append(attrs, "kind", string(kind))
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	g.logger.Log(ctx, level, msg, attrs...)
}
