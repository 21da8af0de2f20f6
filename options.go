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
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Generator.
type Option func(*Generator)

// WithRequestContext sets the initial request context.
//
// Example:
//
//	g := urlgen.New(routes, urlgen.WithRequestContext(urlgen.RequestContext{
//	    BasePath: "/app",
//	    Host:     "example.com",
//	    Scheme:   "https",
//	}))
func WithRequestContext(c RequestContext) Option {
	return func(g *Generator) {
		g.reqCtx.Store(&c)
	}
}

// WithBasePath sets the initial base path.
func WithBasePath(basePath string) Option {
	return func(g *Generator) {
		next := *g.reqCtx.Load()
		next.BasePath = basePath
		g.reqCtx.Store(&next)
	}
}

// WithHost sets the initial host.
func WithHost(host string) Option {
	return func(g *Generator) {
		next := *g.reqCtx.Load()
		next.Host = host
		g.reqCtx.Store(&next)
	}
}

// WithScheme sets the initial scheme.
func WithScheme(scheme string) Option {
	return func(g *Generator) {
		next := *g.reqCtx.Load()
		next.Scheme = scheme
		g.reqCtx.Store(&next)
	}
}

// WithNamePrefix sets the initial route name prefix.
func WithNamePrefix(prefix string) Option {
	return func(g *Generator) {
		next := *g.reqCtx.Load()
		next.NamePrefix = prefix
		g.reqCtx.Store(&next)
	}
}

// WithLogger sets the logger. Failed generations are logged at debug level
// and diagnostics at the level of their kind.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithDiagnostics sets a diagnostic handler for the generator.
//
// Example with logging:
//
//	handler := urlgen.DiagnosticHandlerFunc(func(e urlgen.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	g := urlgen.New(routes, urlgen.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(g *Generator) {
		g.diagnostics = handler
	}
}

// WithMetrics registers generation metrics with reg:
//
//   - urlgen_generated_total{route,form}: URLs generated
//   - urlgen_generate_errors_total{route,kind}: failed generations
//
// Registration panics if the metrics are already registered with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(g *Generator) {
		g.metrics = newMetrics(reg)
	}
}

// WithTracerProvider enables a span per GenerateContext call.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Generator) {
		if tp != nil {
			g.tracer = tp.Tracer(tracerName)
		}
	}
}

// GenerateOption configures a single Generate call.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	absolute bool
	reqCtx   *RequestContext
}

// Absolute forces a URL with scheme and host even when the route agrees
// with the request context.
func Absolute() GenerateOption {
	return WithAbsolute(true)
}

// WithAbsolute sets whether the URL must be absolute.
func WithAbsolute(absolute bool) GenerateOption {
	return func(c *generateConfig) {
		c.absolute = absolute
	}
}

// Using generates against c instead of the generator's request context.
// Use it when a caller needs a context that other goroutines cannot change.
func Using(c RequestContext) GenerateOption {
	return func(cfg *generateConfig) {
		cfg.reqCtx = &c
	}
}
