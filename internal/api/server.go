// Package api provides the HTTP REST API for rigdesc.
//
// The server follows the same lifecycle pattern as other infrastructure components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
	"github.com/nerrad567/rigdesc/internal/auth"
	"github.com/nerrad567/rigdesc/internal/infrastructure/config"
	"github.com/nerrad567/rigdesc/internal/infrastructure/logging"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// ValidationRecorder records validation outcomes. Implemented by
// *influxdb.Client.
type ValidationRecorder interface {
	WriteValidation(instrumentID, invariant string)
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config   config.APIConfig
	Security config.SecurityConfig
	Logger   *logging.Logger
	Archive  archive.Repository
	Audit    audit.Repository   // optional; nil disables the audit trail
	Recorder ValidationRecorder // optional; nil disables validation statistics
	Version  string
}

// Server is the HTTP API server for rigdesc.
//
// It manages the HTTP listener, routes and middleware.
// The server is created with New() and started with Start().
type Server struct {
	cfg      config.APIConfig
	logger   *logging.Logger
	archive  archive.Repository
	audit    audit.Repository
	issuer   *auth.Issuer
	recorder ValidationRecorder
	version  string
	server   *http.Server
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called. When no JWT secret is
// configured the archive write endpoint rejects every request.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Archive == nil {
		return nil, fmt.Errorf("archive repository is required")
	}

	s := &Server{
		cfg:      deps.Config,
		logger:   deps.Logger.Component("api"),
		archive:  deps.Archive,
		audit:    deps.Audit,
		recorder: deps.Recorder,
		version:  deps.Version,
	}

	if jwt := deps.Security.JWT; jwt.Secret != "" {
		issuer, err := auth.NewIssuer(jwt.Secret, jwt.Issuer, time.Duration(jwt.TokenTTL)*time.Minute)
		if err != nil {
			return nil, fmt.Errorf("configuring token issuer: %w", err)
		}
		s.issuer = issuer
	}

	return s, nil
}

// Handler returns the routed HTTP handler without starting a listener.
func (s *Server) Handler() http.Handler {
	return s.buildRouter()
}

// Start begins listening for HTTP connections in a background goroutine.
// The server can be stopped with Close().
func (s *Server) Start(_ context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
	}

	go func() {
		var err error
		if s.cfg.TLS.Enabled {
			s.logger.Info("API server starting with TLS",
				"address", s.server.Addr,
				"cert", s.cfg.TLS.CertFile,
			)
			err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		} else {
			s.logger.Info("API server starting", "address", s.server.Addr)
			err = s.server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
