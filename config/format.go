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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Format names a file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for a file whose encoding cannot be determined.
var ErrUnknownFormat = errors.New("unknown config format")

// FormatFromPath returns the format matching the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

func decode(format Format, data []byte) (map[string]any, error) {
	var out map[string]any

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &out)
	case FormatTOML:
		err = toml.Unmarshal(data, &out)
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) == 0 {
			return map[string]any{}, nil
		}
		err = json.Unmarshal(data, &out)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}

	return out, nil
}
