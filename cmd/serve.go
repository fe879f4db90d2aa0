package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"snowreminder/internal/logging"
	"snowreminder/internal/reminder"
	"snowreminder/internal/server"
)

// DefaultSchedule runs the check every morning at 07:00.
const DefaultSchedule = "0 7 * * *"

// DefaultShutdownTimeout bounds the graceful shutdown of the metrics server.
const DefaultShutdownTimeout = 10 * time.Second

// validateSchedule checks a standard 5-field cron expression.
func validateSchedule(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	var (
		schedule       string
		metricsAddr    string
		metricsEnabled bool
		runOnStart     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the reminder check on a cron schedule",
		Long: `Run the reminder check as a long-lived daemon on a cron schedule,
replacing an external scheduler. Each tick is an independent, stateless run;
a failing run is logged and counted but does not stop the daemon.

Prometheus metrics and health endpoints are exposed on a dedicated port.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			logger := slog.Default()

			if err := validateSchedule(schedule); err != nil {
				return reminder.NewError(reminder.KindConfig, err)
			}

			pipeline, err := buildPipeline(ctx, logger)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			metrics := server.NewMetrics(registry)
			health := server.NewHealthChecker()

			var metricsServer *server.MetricsServer
			if metricsEnabled {
				metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
					Addr:     metricsAddr,
					Registry: registry,
					Health:   health,
				})
				if err != nil {
					return reminder.NewError(reminder.KindInit, err)
				}

				go func() {
					if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
						logger.Error("metrics server failed", logging.Err(err))
					}
				}()
			}

			tick := func() {
				res, err := pipeline.Run(ctx)
				metrics.EventsMatched.Add(float64(len(res.Matched)))
				if res.Sent {
					metrics.RemindersSent.Inc()
				}
				if err != nil {
					metrics.RunsTotal.WithLabelValues(logging.StatusError).Inc()
					logger.Error("scheduled run failed", logging.Err(err))
					return
				}
				metrics.RunsTotal.WithLabelValues(logging.StatusSuccess).Inc()
			}

			scheduler := cron.New()
			if _, err := scheduler.AddFunc(schedule, tick); err != nil {
				return reminder.NewError(reminder.KindInit, err)
			}

			logger.Info("starting scheduler", slog.String("schedule", schedule))
			scheduler.Start()

			if runOnStart {
				tick()
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Info("signal received, shutting down", slog.String("signal", sig.String()))

			health.SetReady(false)
			stopCtx := scheduler.Stop()
			<-stopCtx.Done()

			if metricsServer != nil {
				shutdownCtx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
				defer cancel()
				if err := metricsServer.Shutdown(shutdownCtx); err != nil {
					logger.Error("metrics server shutdown failed", logging.Err(err))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", DefaultSchedule, "Cron schedule for reminder checks (5-field)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Address for the metrics/health server")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", true, "Enable the metrics/health server")
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "Run one check immediately at startup")

	return cmd
}
