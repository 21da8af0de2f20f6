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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rivaas.dev/urlgen/config"
	"rivaas.dev/urlgen/route"
)

const envPrefix = "URLGEN_"

var errNoRoutes = errors.New("no route document: set --routes or the routes setting")

// loadSettings reads the --config file, if any, then the environment.
func loadSettings(ctx context.Context, cmd *cobra.Command) (*config.Settings, error) {
	var opts []config.Option
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		opts = append(opts, config.WithFile(path))
	}
	opts = append(opts, config.WithEnv(envPrefix))

	return config.Load(ctx, opts...)
}

// routesPath returns --routes, falling back to the routes setting.
func routesPath(cmd *cobra.Command, s *config.Settings) (string, error) {
	path, _ := cmd.Flags().GetString("routes")
	if path == "" {
		path = s.Routes
	}
	if path == "" {
		return "", errNoRoutes
	}

	return path, nil
}

// readCollection decodes a route document, choosing the codec by extension.
func readCollection(path string) (*route.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route document: %w", err)
	}

	var coll *route.Collection
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		coll, err = route.DecodeYAML(data)
	default:
		coll, err = route.DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return coll, nil
}
