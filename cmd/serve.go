package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	config "task-management.com/task-management/internal/configs"
	httpapi "task-management.com/task-management/internal/http"
	"task-management.com/task-management/internal/ratelimit"
	"task-management.com/task-management/internal/seed"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if a.cfg.SeedOnStart {
			fixtures, err := seed.Default()
			if err != nil {
				return err
			}
			if _, err := seed.NewSeeder(a.users, a.tasks, a.log).Run(ctx, fixtures); err != nil {
				return err
			}
		}

		counter, closeCounter, err := newRateLimitCounter(a.cfg)
		if err != nil {
			return err
		}
		defer closeCounter()

		handler := httpapi.NewHandler(a.users, a.tasks, a.log)
		e := httpapi.NewServer(handler, httpapi.ServerOptions{
			RateLimitPerMinute: a.cfg.RateLimit,
			Counter:            counter,
			AllowedOrigins:     a.cfg.CORSAllowedOrigins,
		}, a.log)

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			a.log.Infof("HTTP server listening on %s", a.cfg.AppURL)
			if err := e.Start(a.cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-gctx.Done()

			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Duration(a.cfg.ShutdownTimeoutSeconds)*time.Second,
			)
			defer cancel()

			return e.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			return err
		}

		a.log.Info("HTTP server shut down gracefully")
		return nil
	},
}

func newRateLimitCounter(cfg config.Config) (ratelimit.Counter, func(), error) {
	if cfg.RateLimitBackend != config.RateLimitRedis {
		return ratelimit.NewMemoryCounter(), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	return ratelimit.NewRedisCounter(client, cfg.RedisRateLimitPrefix), client.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
