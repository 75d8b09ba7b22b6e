// Package grpc serves the standard grpc.health.v1 service and keeps its
// status in line with the reachability of the task store.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is reported alongside the overall ("") status.
const ServiceName = "gophtasks.TaskManager"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthServer struct {
	address  string
	logger   logging.Logger
	store    Pinger
	interval time.Duration
	health   *health.Server
}

var netListen = net.Listen

func NewHealthServer(address string, l logging.Logger, store Pinger, interval time.Duration) *HealthServer {
	return &HealthServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		store:    store,
		interval: interval,
		health:   health.NewServer(),
	}
}

func (s *HealthServer) Run(ctx context.Context) error {

	// announces address
	listen, err := netListen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)

	s.check(ctx)
	go s.watch(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
