package main

import (
	"github.com/spf13/cobra"

	"github.com/classmix/regroup/httpapi"
	"github.com/classmix/regroup/internal/logging"
	"github.com/classmix/regroup/internal/metrics"
	"github.com/classmix/regroup/planner"
)

var serveFlags struct {
	addr    string
	verbose bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the plan HTTP API",
	Long: `Serve runs the JSON API for generating and exporting schedules,
with Prometheus metrics on /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.addr, "addr", "a", ":8080", "listen address")
	serveCmd.Flags().BoolVarP(&serveFlags.verbose, "verbose", "v", false, "debug logging")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := logging.NewSlog(newLogger(serveFlags.verbose))
	collector := metrics.NewPrometheus(nil, "regroup")

	p := planner.New(
		planner.WithLogger(logger),
		planner.WithMetrics(collector),
	)

	server := httpapi.NewServer(p, httpapi.WithLogger(logger))

	return server.Run(serveFlags.addr)
}
