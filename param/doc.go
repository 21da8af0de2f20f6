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

// Package param models the parameter values passed to URL generation.
//
// Parameter values are a tagged variant rather than bare interface values so
// that every consumer (path rendering, host rendering, query flattening) can
// switch exhaustively over the shapes a value may take:
//
//   - Null: an explicitly absent value
//   - Scalar: a string, number or boolean leaf
//   - Sequence: an ordered list of values
//   - Mapping: an ordered list of key/value pairs
//   - Deferred: a function producing a value, invoked when rendered
//
// Parameters themselves are collected in a [Set], which keeps the order in
// which names were added. That order is the order in which leftover
// parameters appear in a generated query string.
//
// # Building parameters
//
//	params := param.NewSet().
//	    Add("slug", "hello-world").
//	    Add("page", 2).
//	    Add("tags", []any{"go", "url"})
//
// Go maps have no order, so [FromMap] and [Of] sort map keys. Use [Map] and
// [P] when the key order of a nested mapping matters, or [Parse] to read an
// ordered JSON/YAML object.
package param
