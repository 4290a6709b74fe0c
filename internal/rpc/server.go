package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	krpcv1 "github.com/echo8/krpc/gen/krpc/v1"
	"github.com/echo8/krpc/internal/config"
	"github.com/echo8/krpc/internal/metric"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Server struct {
	cfg    *config.ServerConfig
	grpc   *grpc.Server
	health *health.Server
}

func NewServer(cfg *config.ServerConfig, h Handler, ms metric.Service) (*Server, error) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(ms.UnaryInterceptor()),
		grpc.ChainStreamInterceptor(ms.StreamInterceptor()),
	}
	if cfg.MaxConcurrentStreams > 0 {
		opts = append(opts, grpc.MaxConcurrentStreams(cfg.MaxConcurrentStreams))
	}
	if cfg.Tls != nil {
		tlsCfg, err := cfg.Tls.LoadServerTLSConfig()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			opts = append(opts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		}
	}
	s := &Server{cfg: cfg, grpc: grpc.NewServer(opts...), health: health.NewServer()}
	krpcv1.RegisterLogServiceServer(s.grpc, &service{h: h})
	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return s, nil
}

// ListenAndServe listens on the configured host and port and serves until
// ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, lis)
}

// Serve blocks until lis fails or ctx is done. Once ctx is done in-flight
// calls get ShutdownTimeout to finish before they are cut off.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpc.Serve(lis)
	}()
	slog.Info("Serving gRPC.", "addr", lis.Addr().String(), "service", ServiceName)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.stop()
		return nil
	}
}

func (s *Server) stop() {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Stopped gRPC server.")
	case <-time.After(s.cfg.ShutdownTimeout):
		slog.Warn("Graceful stop timed out, closing open calls.", "timeout", s.cfg.ShutdownTimeout)
		s.grpc.Stop()
	}
}
