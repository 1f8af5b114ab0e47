package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/server"
)

var (
	serveAddr        string // API listen address
	serveMetricsAddr string // Prometheus listen address
	serveConfigPath  string // optional YAML config file
)

// serveCmd starts the HTTP API until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := server.DefaultConfig()
		if serveConfigPath != "" {
			loaded, err := server.LoadConfig(serveConfigPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
			cfg = loaded
		}
		// Flags beat the config file when set explicitly.
		if cmd.Flags().Changed("addr") {
			cfg.ListenAddr = serveAddr
		}
		if cmd.Flags().Changed("metrics-addr") {
			cfg.MetricsAddr = serveMetricsAddr
		}
		if !rootCmd.PersistentFlags().Changed("log") && cfg.LogLevel != "" {
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				logrus.Fatalf("Invalid log level in config: %s", cfg.LogLevel)
			}
			logrus.SetLevel(level)
		}

		collector, err := server.NewCollector(nil)
		if err != nil {
			logrus.Fatalf("Failed to initialise metrics collector: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := server.New(cfg, collector).Run(ctx); err != nil {
			logrus.Fatalf("Server exited: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "API listen address")
	serveCmd.Flags().StringVar(&serveMetricsAddr, "metrics-addr", ":9090", "Prometheus metrics listen address (empty disables)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
}
