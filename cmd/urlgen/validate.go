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
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a route document",
		Long: `Check a route document against the document schema, then check every
route for unknown token kinds and unnamed variables. All problems are
reported at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			settings, err := loadSettings(ctx, cmd)
			if err != nil {
				return err
			}
			path, err := routesPath(cmd, settings)
			if err != nil {
				return err
			}
			coll, err := readCollection(path)
			if err != nil {
				return err
			}
			if err = coll.Routes.Validate(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d routes ok\n", path, coll.Routes.Len())

			return nil
		},
	}

	return cmd
}
