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

import "strings"

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether c is outside the URI component unreserved set
// A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func shouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}

	return true
}

// escape percent-encodes every byte outside the unreserved set, keeping '/'
// when keepSlash is set.
func escape(s string, keepSlash bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; shouldEscape(c) && (c != '/' || !keepSlash) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shouldEscape(c) || (c == '/' && keepSlash) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String()
}

// escapePathValue escapes a path variable value. Slashes pass through so that
// multi-segment values such as "2024/06/post" stay readable.
func escapePathValue(s string) string {
	return escape(s, true)
}

// escapeQueryComponent escapes a query key or value, writing spaces as "+".
func escapeQueryComponent(s string) string {
	return strings.ReplaceAll(escape(s, false), "%20", "+")
}
