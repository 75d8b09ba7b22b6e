package grpc

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type switchPinger struct{ down atomic.Bool }

func (p *switchPinger) Ping(context.Context) error {
	if p.down.Load() {
		return errors.New("store down")
	}
	return nil
}

func currentStatus(t *testing.T, s *HealthServer, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := s.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.Status
}

func TestCheck_FollowsStore(t *testing.T) {
	p := &switchPinger{}
	s := NewHealthServer("", logging.Nop(), p, time.Second)

	s.check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, currentStatus(t, s, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, currentStatus(t, s, ServiceName))

	p.down.Store(true)
	s.check(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, currentStatus(t, s, ""))
}

func TestWatch_PicksUpChanges(t *testing.T) {
	p := &switchPinger{}
	s := NewHealthServer("", logging.Nop(), p, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.check(ctx)
	go s.watch(ctx)

	p.down.Store(true)
	assert.Eventually(t, func() bool {
		return currentStatus(t, s, "") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := NewHealthServer("", logging.Nop(), &switchPinger{}, time.Second)
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = s.loggingInterceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Unavailable, "x")
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestRun_ServesHealthAndStops(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	orig := netListen
	netListen = func(network, address string) (net.Listener, error) { return lis, nil }
	defer func() { netListen = orig }()

	s := NewHealthServer("bufnet", logging.Nop(), &switchPinger{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := NewHealthServer("127.0.0.1:99999", logging.Nop(), &switchPinger{}, time.Second)

	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}
