package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kridavyuha/forecast-dashboard/pkg/conf"

	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forecast-dashboard",
		Short: "Cricket player performance forecast dashboard",
		Long: `forecast-dashboard serves precomputed batsman and bowler forecasts
read from two CSV files as an interactive dashboard.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing conf.yaml")

	rootCmd.AddCommand(newServeCmd(), newExportCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := conf.Config(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func newExportCmd() *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the forecast download files to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := conf.Config(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runExport(cfg, initLogger(cfg.Log), format, outDir)
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv, xlsx or all")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func runServe(ctx context.Context, cfg *conf.Config) error {
	log := initLogger(cfg.Log)

	app := newApp(cfg, log)

	// Missing files do not stop the server: the dashboard shows the blocking
	// page and retries on the next request.
	if _, err := app.dataset(); err != nil {
		log.WithError(err).Error("forecast data unavailable")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      app.R,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
