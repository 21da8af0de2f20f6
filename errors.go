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
	"errors"
	"fmt"
)

var (
	// ErrRouteNotFound indicates that neither the prefixed nor the bare route name exists.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingRouteParameter indicates that a required path parameter has no value and no default.
	ErrMissingRouteParameter = errors.New("missing required parameter")

	// ErrUnsupportedToken indicates a path token whose kind generation does not understand.
	ErrUnsupportedToken = errors.New("unsupported token")
)

// RouteNotFoundError is returned when a route name cannot be resolved.
// It matches ErrRouteNotFound with errors.Is.
type RouteNotFoundError struct {
	Name string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf(`The route "%s" does not exist.`, e.Name)
}

func (e *RouteNotFoundError) Unwrap() error {
	return ErrRouteNotFound
}

// MissingParameterError is returned when a non-optional path variable has
// neither a supplied value nor a default.
// It matches ErrMissingRouteParameter with errors.Is.
type MissingParameterError struct {
	Route string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf(`The route "%s" requires the parameter "%s".`, e.Route, e.Param)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingRouteParameter
}

// UnsupportedTokenError is returned for a path token of unknown kind.
// It matches ErrUnsupportedToken with errors.Is.
type UnsupportedTokenError struct {
	Kind string
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf(`The token type "%s" is not supported.`, e.Kind)
}

func (e *UnsupportedTokenError) Unwrap() error {
	return ErrUnsupportedToken
}

// errorKind returns a short label for metrics and traces.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRouteNotFound):
		return "route_not_found"
	case errors.Is(err, ErrMissingRouteParameter):
		return "missing_parameter"
	case errors.Is(err, ErrUnsupportedToken):
		return "unsupported_token"
	default:
		return "other"
	}
}
