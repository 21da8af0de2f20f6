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
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName       = "rivaas.dev/urlgen"
	metricsNamespace = "urlgen"

	notFoundRouteLabel = "_not_found"
)

// metrics holds the Prometheus collectors of a Generator.
type metrics struct {
	generated *prometheus.CounterVec
	errors    *prometheus.CounterVec
}

// newMetrics registers the generator counters with reg. Generators sharing
// a registry share the counters.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &metrics{
		generated: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generated_total",
			Help:      "Total number of URLs generated",
		}, []string{"route", "form"})),

		errors: registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generate_errors_total",
			Help:      "Total number of failed URL generations",
		}, []string{"route", "kind"})),
	}
}

// registerCounterVec registers c, returning the collector already registered
// under the same descriptor if there is one. Other registration errors panic.
func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}

func (g *Generator) startSpan(ctx context.Context, name string, absolute bool) (context.Context, trace.Span) {
	return g.tracer.Start(ctx, "urlgen.Generate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("urlgen.route", name),
			attribute.Bool("urlgen.absolute", absolute),
		),
	)
}

// observe records the outcome of one generation on span, metrics and logger.
func (g *Generator) observe(ctx context.Context, span trace.Span, name string, form Form, err error) {
	if err != nil {
		kind := errorKind(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, kind)
		span.SetAttributes(attribute.String("urlgen.error", kind))
		if g.metrics != nil {
			label := name
			if kind == "route_not_found" {
				// Unknown names come from callers; keep them out of label values.
				label = notFoundRouteLabel
			}
			g.metrics.errors.WithLabelValues(label, kind).Inc()
		}
		g.logger.DebugContext(ctx, "url generation failed", "route", name, "error", err)
		return
	}

	span.SetAttributes(attribute.String("urlgen.form", string(form)))
	if g.metrics != nil {
		g.metrics.generated.WithLabelValues(name, string(form)).Inc()
	}
	if g.logger.Enabled(ctx, slog.LevelDebug) {
		g.logger.DebugContext(ctx, "url generated", "route", name, "form", string(form))
	}
}
