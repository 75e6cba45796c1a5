// Package bootstrap runs a catflix service process: registration in the
// discovery registry, the public HTTP API, the internal gRPC health server,
// optional background workers and graceful shutdown.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhishek622/catflix/internal/grpcutil"
	"github.com/abhishek622/catflix/internal/ratelimit"
	"github.com/abhishek622/catflix/pkg/discovery"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	heartbeatInterval = time.Second
	shutdownTimeout   = 10 * time.Second
)

// Worker is a long running task stopped by cancelling its context.
type Worker func(ctx context.Context) error

// Service describes one service process.
type Service struct {
	Name     string
	Host     string
	Port     int
	GRPCPort int
	Handler  http.Handler
	Registry discovery.Registry
	Limiter  *ratelimit.Limiter
	Logger   *zap.Logger
	Workers  []Worker
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM is received.
func (s *Service) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	instanceID := discovery.GenerateInstanceID(s.Name)
	if err := s.Registry.Register(ctx, instanceID, s.Name, fmt.Sprintf("%s:%d", s.Host, s.Port)); err != nil {
		return fmt.Errorf("register %s: %w", s.Name, err)
	}
	defer func() {
		if err := s.Registry.Deregister(context.Background(), instanceID, s.Name); err != nil {
			s.Logger.Warn("Failed to deregister", zap.Error(err))
		}
	}()
	go s.heartbeat(ctx, instanceID)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Port),
		Handler:           s.Handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	grpcServer, healthSrv := grpcutil.NewHealthServer(s.Name, s.Limiter)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	errCh := make(chan error, 2+len(s.Workers))
	go func() {
		s.Logger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		s.Logger.Info("Starting gRPC health server", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()
	for _, w := range s.Workers {
		go func() {
			if err := w(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.Logger.Info("Received signal, attempting graceful shutdown")
	case runErr = <-errCh:
		s.Logger.Error("Runtime failure", zap.Error(runErr))
	}
	stop()

	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.Logger.Warn("HTTP shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	s.Logger.Info("Graceful stopped the servers")
	return runErr
}

func (s *Service) heartbeat(ctx context.Context, instanceID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		if err := s.Registry.ReportHealthyState(instanceID, s.Name); err != nil {
			s.Logger.Warn("Failed to report healthy state", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
