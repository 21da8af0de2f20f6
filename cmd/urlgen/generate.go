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

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"rivaas.dev/urlgen"
	"rivaas.dev/urlgen/param"
)

type generateOptions struct {
	params   string
	pairs    []string
	absolute bool
	trace    bool
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate NAME",
		Short: "Generate the URL of a route",
		Long: `Generate the URL of the named route.

Parameters come from --params, a JSON or YAML object whose key order is
kept, and from repeated --param key=value flags applied afterwards.`,
		Example: `  urlgen generate blog_show --routes routes.json --param slug=hello
  urlgen generate search --routes routes.yaml --params '{"q": "go", "tags": ["a", "b"]}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.params, "params", "", "parameters as a JSON or YAML object")
	cmd.Flags().StringArrayVarP(&opts.pairs, "param", "p", nil, "parameter as key=value (repeatable)")
	cmd.Flags().BoolVarP(&opts.absolute, "absolute", "a", false, "generate an absolute URL")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "write the generation span to stderr")

	return cmd
}

func runGenerate(cmd *cobra.Command, name string, opts generateOptions) error {
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

	params, err := buildParams(opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), settings)
	genOpts := append(settings.Options(), urlgen.WithLogger(logger))

	if opts.trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() {
			if err := tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("trace provider shutdown failed", "error", err)
			}
		}()
		genOpts = append(genOpts, urlgen.WithTracerProvider(tp))
	}

	g := urlgen.NewFromCollection(coll, genOpts...)

	url, err := g.GenerateContext(ctx, name, params, urlgen.WithAbsolute(opts.absolute || settings.Absolute))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), url)

	return nil
}

func buildParams(opts generateOptions) (*param.Set, error) {
	params, err := param.Parse([]byte(opts.params))
	if err != nil {
		return nil, err
	}

	for _, pair := range opts.pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", pair)
		}
		params.Add(key, value)
	}

	return params, nil
}
