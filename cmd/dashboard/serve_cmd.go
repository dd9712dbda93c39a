package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"recruitment-dashboard/internal/api"
	"recruitment-dashboard/internal/api/handler"
	"recruitment-dashboard/internal/session"
	"recruitment-dashboard/pkg/router"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the source table and serve the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			cfg, table, err := root.load(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.ServerPort = port
			}
			logger := cfg.Logger()

			sessions := session.NewStore(cfg.SessionTTL, logger)
			go sessions.Run(ctx, sweepInterval(cfg.SessionTTL))

			apiOpts := api.Options{
				MetricsEnabled: cfg.Prometheus.Enabled,
				MetricsPath:    cfg.Prometheus.Path,
				SwaggerEnabled: cfg.SwaggerEnabled,
				AllowedOrigins: cfg.CORSAllowedOrigins,
			}
			r := router.New(logger)
			api.RegisterRoutes(r, handler.New(table, sessions, cfg.DashboardOptions(), logger), apiOpts)

			srv := &http.Server{
				Addr:              cfg.Address(),
				Handler:           api.Wrap(r, apiOpts),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return run(ctx, srv, r, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (overrides PORT)")
	return cmd
}

func run(ctx context.Context, srv *http.Server, r *router.Router, logger *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": srv.Addr, "routes": len(r.Paths())}).Info("server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

// sweepInterval checks for idle sessions a few times per TTL.
func sweepInterval(ttl time.Duration) time.Duration {
	if iv := ttl / 4; iv > time.Second {
		return iv
	}
	return time.Second
}
