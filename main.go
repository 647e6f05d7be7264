package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/danielhkuo/contractflow/cliparse"
	"github.com/danielhkuo/contractflow/db"
	"github.com/danielhkuo/contractflow/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("error parsing flags", zap.Error(err))
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, conn); err != nil {
		logger.Fatal("schema creation failed", zap.Error(err))
	}
	logger.Info("database schema ready", zap.String("type", cfg.DatabaseType))

	// Create server
	server := &http.Server{
		Handler:           router.NewRouter(conn, cfg, logger),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
			server.Close()
		}
	}()

	// Start server
	logger.Info("listening", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server closed", zap.Error(err))
		return
	}
	logger.Info("server closed")
}

func newLogger(cfg cliparse.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
