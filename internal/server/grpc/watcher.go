package grpc

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// watch re-checks the store every interval until ctx is done.
func (s *HealthServer) watch(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *HealthServer) check(ctx context.Context) {
	pingCtx := ctx
	if s.interval > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, s.interval)
		defer cancel()
	}

	status := healthpb.HealthCheckResponse_SERVING
	if err := s.store.Ping(pingCtx); err != nil {
		s.logger.Warn(ctx, "store ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}
