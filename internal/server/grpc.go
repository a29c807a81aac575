package server

import (
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-soft-descriptor/internal/config"
	myGRPC "github.com/MKhiriev/go-soft-descriptor/internal/handler/grpc"
	"github.com/MKhiriev/go-soft-descriptor/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen grpc on %s: %w", cfg.GRPCAddress, err)
	}

	opts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(handler.UnaryInterceptors()...)}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}
	server := grpc.NewServer(opts...)
	myGRPC.RegisterValidatorServer(server, handler)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: lis,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v\n", err)
	}
}

// Shutdown waits for in-flight calls, forcing the stop once the shutdown
// timeout elapses.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	if g.shutdownTimeout <= 0 {
		<-stopped
		return
	}

	select {
	case <-stopped:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, forcing")
		g.server.Stop()
	}
}
