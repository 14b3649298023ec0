package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	mockhttp "github.com/mockhttp-project/mockhttp"
	"github.com/mockhttp-project/mockhttp/fixture"
	"github.com/mockhttp-project/mockhttp/internal/logging"
	"github.com/mockhttp-project/mockhttp/openapi"
)

var resolveFlags struct {
	fixturePath string
	openapiPath string
	baseURL     string
	parallel    int
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [METHOD URL]...",
	Short: "Resolve requests against a fixture or OpenAPI document",
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return errors.New("arguments must be METHOD URL pairs")
		}
		return nil
	},
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.StringVar(&resolveFlags.fixturePath, "fixture", "", "Fixture file declaring the endpoints")
	f.StringVar(&resolveFlags.openapiPath, "openapi", "", "OpenAPI 3 document declaring the endpoints")
	f.StringVar(&resolveFlags.baseURL, "base-url", "", "Base URL override for --openapi")
	f.IntVar(&resolveFlags.parallel, "parallel", 4, "Maximum concurrent resolutions")

	resolveCmd.MarkFlagsOneRequired("fixture", "openapi")
	resolveCmd.MarkFlagsMutuallyExclusive("fixture", "openapi")
}

// outcome holds one resolution result, collected by argument position.
type outcome struct {
	method string
	url    string
	value  string
	delay  time.Duration
	err    error
}

func runResolve(cmd *cobra.Command, args []string) error {
	logger := logging.New("resolve")

	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	logger.Debug("registry loaded", "endpoints", len(registry.Endpoints()))

	results := make([]outcome, len(args)/2)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(resolveFlags.parallel)
	for i := 0; i < len(args); i += 2 {
		idx, method, url := i/2, args[i], args[i+1]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, delay, err := mockhttp.Resolve(registry, mockhttp.NewRequest(method, url, "", mockhttp.String()))
			results[idx] = outcome{method: method, url: url, value: value, delay: delay, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Print in argument order regardless of completion order
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(out, "%s %s -> error: %v\n", r.method, r.url, r.err)
			continue
		}
		fmt.Fprintf(out, "%s %s -> %s (delay %s)\n", r.method, r.url, r.value, r.delay)
	}

	return nil
}

// loadRegistry builds the registry from whichever source flag was provided.
func loadRegistry() (*mockhttp.Registry, error) {
	if resolveFlags.fixturePath != "" {
		return fixture.Load(resolveFlags.fixturePath)
	}
	return openapi.Load(resolveFlags.openapiPath, openapi.Config{BaseURL: resolveFlags.baseURL})
}
