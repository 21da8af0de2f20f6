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

// Command urlgen generates URLs from a route document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "urlgen",
		Short: "Generate URLs from named routes",
		Long: `urlgen builds URLs from a route document: named routes made of
path and host tokens, defaults and a _scheme requirement.

Settings are read from --config and from URLGEN_* environment variables,
with the environment taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "settings file (yaml, toml or json)")
	root.PersistentFlags().String("routes", "", "route document (json or yaml); overrides the routes setting")

	root.AddCommand(
		generateCmd(),
		routesCmd(),
		validateCmd(),
		versionCmd(),
	)

	return root
}
