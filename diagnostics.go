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

// DiagnosticEvent represents a generation anomaly that did not fail the call.
//
// Generation is permissive: some inputs degrade to best-effort output instead
// of an error. Diagnostics make those cases visible without changing the
// generated URL.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagHostParamMissing reports a host variable with no value and no default.
	// The placeholder MissingHostValue is inserted into the host.
	DiagHostParamMissing DiagnosticKind = "host_param_missing"

	// DiagHostTokenSkipped reports a host token of unknown kind that was ignored.
	DiagHostTokenSkipped DiagnosticKind = "host_token_skipped"

	// DiagRoutePrefixFallback reports that the prefixed route name was absent
	// and the bare name was used instead.
	DiagRoutePrefixFallback DiagnosticKind = "route_prefix_fallback"
)

// DiagnosticHandler receives diagnostic events from the generator.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// If no handler is configured, diagnostics only reach the logger.
//
// Example with metrics:
//
//	handler := urlgen.DiagnosticHandlerFunc(func(e urlgen.DiagnosticEvent) {
//	    diagnosticsTotal.WithLabelValues(string(e.Kind)).Inc()
//	})
//	g := urlgen.New(routes, urlgen.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}
