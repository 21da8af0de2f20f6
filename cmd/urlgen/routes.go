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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rivaas.dev/urlgen/route"
)

func routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes of a route document",
		Args:  cobra.NoArgs,
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

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHOST\tPATH")
			for name, def := range coll.Routes.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, pattern(def.HostTokens), pattern(def.Tokens))
			}

			return w.Flush()
		},
	}

	return cmd
}

// pattern renders reverse-stored tokens as a readable template,
// such as /blog/{slug}.
func pattern(tokens []route.Token) string {
	var b strings.Builder
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		switch tok.Kind {
		case route.KindText:
			b.WriteString(tok.Text)
		case route.KindVariable:
			b.WriteString(tok.Separator + "{" + tok.Name + "}")
		default:
			b.WriteString("<" + string(tok.Kind) + ">")
		}
	}

	return b.String()
}
