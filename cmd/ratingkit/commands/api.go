package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantfold/ratingkit/internal/api"
	"github.com/quantfold/ratingkit/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the rating API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                    - Health check
  POST /api/translate/scores      - Ratings to rating scores
  POST /api/translate/ratings     - Scores or WARFs to ratings
  POST /api/translate/warf        - Ratings to WARFs
  POST /api/consolidate           - Cross-agency consolidation
  POST /api/portfolio/average     - Missing-aware weighted average
  POST /api/portfolio/warf-buffer - WARF headroom in its bucket

Example:
  go run ./cmd/ratingkit api
  go run ./cmd/ratingkit api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (default from config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	ratingsHandler, err := handlers.NewRatingsHandler(cfg, log)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	router := api.NewRouter(ratingsHandler, cfg, log)
	server := api.New(cfg, log, router)

	// Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("Server running on http://localhost:%s\n", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
