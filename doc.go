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

// Package urlgen generates URLs from compiled, named route definitions.
//
// It is the reverse of a router: given a route name and parameter values it
// substitutes the values into the route's tokens, applies defaults, checks
// required parameters and appends the remaining parameters as a query string.
// Route compilation and request matching happen elsewhere; urlgen consumes
// their output (see package route).
//
// # Key Features
//
//   - Optional trailing parameters that disappear when left at their default
//   - Host patterns with placeholders, e.g. "{subdomain}.example.com"
//   - Relative URLs unless the route needs another scheme or host
//   - Nested query parameters in bracket notation (tags[]=a&filter[size]=10)
//   - Locale-prefixed route variants with fallback to the bare name
//   - Diagnostics, slog logging, Prometheus metrics and OpenTelemetry spans
//
// # Quick Start
//
//	routes := route.NewTable().
//	    Add("blog_post", &route.Definition{
//	        Tokens: []route.Token{
//	            route.Variable("/", "[^/]+?", "slug"),
//	            route.Text("/blog"),
//	        },
//	    })
//
//	g := urlgen.New(routes, urlgen.WithRequestContext(urlgen.RequestContext{
//	    Host:   "example.com",
//	    Scheme: "https",
//	}))
//
//	url, err := g.Generate("blog_post", param.NewSet().Add("slug", "hello").Add("ref", "rss"))
//	// url == "/blog/hello?ref=rss"
//
//	url, err = g.Generate("blog_post", param.NewSet().Add("slug", "hello"), urlgen.Absolute())
//	// url == "https://example.com/blog/hello"
//
// # URL form
//
// The generated URL carries scheme and host when:
//
//  1. the route's "_scheme" requirement differs from the request context scheme;
//     the required scheme is used with the route host, or the context host
//  2. the route host differs from the context host; the context scheme is used
//  3. Absolute is passed; context scheme and host are used
//
// Otherwise it is the base path followed by the route path.
//
// # Concurrency
//
// A Generator may be shared between goroutines. Route tables are frozen and
// swapped as a whole with SetRoutes. Request context setters publish a new
// copy, so each Generate call sees either the old or the new context, never
// a mix. Callers that need to pin a context for a series of calls pass it
// explicitly with Using.
package urlgen
