package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgehrsitz/fitsizer/internal/logging"
	"github.com/rgehrsitz/fitsizer/internal/metrics"
	"github.com/rgehrsitz/fitsizer/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sizing engine over HTTP",
	Long: `Serve the sizing engine over HTTP:

  POST /v1/evaluate   evaluate a scenario or an explicit occupancy
  POST /v1/compare    compare every scenario
  POST /v1/target     find the occupancy that reaches a revenue target
  GET  /v1/catalog    subscription types
  GET  /v1/scenarios  occupancy scenarios
  GET  /healthz       liveness
  GET  /metrics       Prometheus metrics

Request fields left out take the configured input defaults and any input flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		cfg := s.settings.Server
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		m := metrics.NewManager(metrics.WithConstLabels(map[string]string{"version": version}))
		srv := server.New(s.engine, m, logging.Logger.With(zap.String("component", "http")), server.Options{
			Addr:               cfg.Addr,
			ReadTimeout:        time.Duration(cfg.ReadTimeoutSec) * time.Second,
			WriteTimeout:       time.Duration(cfg.WriteTimeoutSec) * time.Second,
			MaxRequestBodySize: cfg.MaxRequestBodySize,
			Version:            version,
			Defaults: server.Inputs{
				Scenario:     s.scenario,
				Distribution: s.mix,
				Demographics: s.demo,
				Campaign:     s.camp,
			},
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default: server.addr setting, :9080)")

	rootCmd.AddCommand(serveCmd)
}
