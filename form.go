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
	"strings"

	"rivaas.dev/urlgen/route"
)

// Form describes whether a generated URL carries a scheme and host.
type Form string

const (
	// FormRelative is a URL made of base path, path and query only.
	FormRelative Form = "relative"
	// FormAbsolute is a URL starting with scheme and host.
	FormAbsolute Form = "absolute"
)

// writeBase writes the scheme and host part of the URL, if any, and reports
// the resulting form. Priority:
//
//  1. a _scheme requirement differing from the context scheme
//  2. a route host differing from the context host
//  3. an explicit request for an absolute URL
//
// Otherwise the URL stays relative.
func writeBase(b *strings.Builder, def *route.Definition, rc RequestContext, host string, absolute bool) Form {
	if scheme, ok := def.Scheme(); ok && scheme != rc.Scheme {
		if host == "" {
			host = rc.Host
		}
		writeOrigin(b, scheme, host)
		return FormAbsolute
	}

	if host != "" && host != rc.Host {
		writeOrigin(b, rc.Scheme, host)
		return FormAbsolute
	}

	if absolute {
		writeOrigin(b, rc.Scheme, rc.Host)
		return FormAbsolute
	}

	return FormRelative
}

func writeOrigin(b *strings.Builder, scheme, host string) {
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
}
