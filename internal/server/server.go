package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/placementportal/internal/bootstrap"
	"github.com/yigit/placementportal/internal/config"
	"github.com/yigit/placementportal/internal/db"
	"github.com/yigit/placementportal/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	database db.Database
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, mongoDB, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	blobs, err := bootstrap.SetupBlobStore(cfg, mongoDB, lgr)
	if err != nil {
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("failed to setup file storage: %w", err)
	}
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("File storage configured")

	deps := bootstrap.BuildDependencies(database, blobs, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	s := &Server{
		config:   cfg,
		router:   router,
		database: database,
		logger:   lgr,
	}

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	// No read or write timeout: resume downloads stream for as long as the client reads
	s.http = &http.Server{
		Addr:              s.config.ListenAddr(),
		Handler:           s.router,
		ReadHeaderTimeout: helpers.ParseDuration(s.config.Server.ReadHeaderTimeout, 10*time.Second),
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.database.Close(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains in-flight requests, then closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.database != nil {
		s.logger.Info().Msg("Closing database connection...")
		if err := s.database.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Database close error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("Database connection closed.")
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}
