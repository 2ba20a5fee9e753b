package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shattajit/Mini-CRM/db"
	"github.com/Shattajit/Mini-CRM/internal/auth"
	"github.com/Shattajit/Mini-CRM/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM, then drain in-flight requests.

Examples:
  # Serve with settings from the environment and .env
  minicrm serve

  # Layer a YAML file under the environment
  minicrm serve --config minicrm.yaml`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, gdb, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close(gdb)
		_ = log.Sync()
	}()

	tokens, err := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return err
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	handler := router.NewRouter(router.Dependencies{
		DB:             gdb,
		Logger:         log,
		Tokens:         tokens,
		AllowedOrigins: cfg.CORS.Origins(),
		Clock:          time.Now,
		Location:       cfg.App.Location(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("mode", gin.Mode()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
