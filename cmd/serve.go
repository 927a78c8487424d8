package main

import (
	"MediCore/database"
	"MediCore/routes"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(true)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			db, err := database.InitDB(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := database.Close(db); err != nil {
					log.Error().Err(err).Msg("failed to close database")
				}
			}()
			if migrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}

			redisClient, err := database.NewRedisClient(ctx, database.RedisConfigFrom(cfg), log)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			handler, err := routes.SetupRoutes(cfg, db, redisClient, log)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:           ":" + cfg.Port,
				Handler:        handler,
				ReadTimeout:    30 * time.Second,
				WriteTimeout:   30 * time.Second,
				MaxHeaderBytes: 1 << 20,
				IdleTimeout:    30 * time.Second,
			}

			var wg sync.WaitGroup
			serveErr := make(chan error, 1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				log.Info().Str("addr", srv.Addr).Msg("starting server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serveErr <- err
				}
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			select {
			case <-stop:
			case err := <-serveErr:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			log.Info().Msg("shutting down server")
			database.LogPoolStats(redisClient, log)
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			wg.Wait()
			log.Info().Msg("server exited gracefully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "run schema migrations before serving")
	return cmd
}
