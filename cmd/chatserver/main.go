package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loomwear/server/internal/config"
	"github.com/loomwear/server/internal/logger"
)

// @title Loomwear Chat API
// @version 1.0
// @description Chat relay service for the Loomwear store: classifies message
// @description relevance and streams model responses chunk by chunk.

func main() {
	logger.Info("starting chat relay service")

	// load configuration from environment
	cfg, err := config.LoadChat()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	srv := NewServer(cfg)

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 15 * time.Second,
		// no write timeout: responses stream for as long as the model
		// keeps producing chunks
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("chat relay listening", "port", cfg.Port, "model", cfg.ChatModel)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down chat relay")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("chat relay stopped")
}
