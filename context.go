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

// RequestContext holds the ambient values URL generation falls back to when
// a route does not supply its own host or scheme.
//
// All fields default to the empty string.
type RequestContext struct {
	// BasePath is prepended to every generated path, e.g. "/app" or "/index.php".
	BasePath string

	// NamePrefix is tried in front of every route name before the bare name,
	// e.g. "en__RG__" for locale-specific route variants.
	NamePrefix string

	// Host is the host of the current request, e.g. "example.com".
	Host string

	// Scheme is the scheme of the current request, e.g. "https".
	Scheme string
}

// BasePath returns the base path of the current snapshot.
func (g *Generator) BasePath() string {
	return g.RequestContext().BasePath
}

// SetBasePath replaces the base path.
func (g *Generator) SetBasePath(basePath string) {
	g.updateContext(func(c *RequestContext) { c.BasePath = basePath })
}

// NamePrefix returns the route name prefix of the current snapshot.
func (g *Generator) NamePrefix() string {
	return g.RequestContext().NamePrefix
}

// SetNamePrefix replaces the route name prefix.
func (g *Generator) SetNamePrefix(prefix string) {
	g.updateContext(func(c *RequestContext) { c.NamePrefix = prefix })
}

// Host returns the host of the current snapshot.
func (g *Generator) Host() string {
	return g.RequestContext().Host
}

// SetHost replaces the host.
func (g *Generator) SetHost(host string) {
	g.updateContext(func(c *RequestContext) { c.Host = host })
}

// Scheme returns the scheme of the current snapshot.
func (g *Generator) Scheme() string {
	return g.RequestContext().Scheme
}

// SetScheme replaces the scheme.
func (g *Generator) SetScheme(scheme string) {
	g.updateContext(func(c *RequestContext) { c.Scheme = scheme })
}

// RequestContext returns a copy of the current request context.
func (g *Generator) RequestContext() RequestContext {
	return *g.reqCtx.Load()
}

// SetRequestContext replaces the whole request context at once.
func (g *Generator) SetRequestContext(c RequestContext) {
	g.ctxMu.Lock()
	defer g.ctxMu.Unlock()

	g.reqCtx.Store(&c)
}

// updateContext applies fn to a copy of the current context and publishes it.
// Generate calls never observe a half-applied update.
func (g *Generator) updateContext(fn func(*RequestContext)) {
	g.ctxMu.Lock()
	defer g.ctxMu.Unlock()

	next := *g.reqCtx.Load()
	fn(&next)
	g.reqCtx.Store(&next)
}
