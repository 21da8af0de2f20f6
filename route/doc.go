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

// Package route defines compiled route definitions consumed by URL generation.
//
// A compiled route is a sequence of tokens produced by an external route
// compiler. Tokens are stored in reverse emission order: the last path
// segment comes first. Consumers build the path by prepending each resolved
// token to an accumulator.
//
// # Wire format
//
// Tokens travel as JSON tuples:
//
//	["text", "/blog-post"]
//	["variable", "/", "[^/]+?", "slug"]
//
// A route definition and a collection of routes look like:
//
//	{
//	  "base_url": "",
//	  "host": "localhost",
//	  "scheme": "http",
//	  "routes": {
//	    "blog_post": {
//	      "tokens": [["variable", "/", "[^/]+?", "slug"], ["text", "/blog-post"]],
//	      "defaults": {},
//	      "requirements": {"_scheme": "https"},
//	      "hosttokens": []
//	    }
//	  }
//	}
//
// Route order in a [Table] follows the order of the document. Empty defaults
// and requirements may be encoded as [] as well as {}.
//
// YAML documents with the same shape are accepted by [DecodeYAML].
package route
