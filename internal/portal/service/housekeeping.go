package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"
)

// DefaultHousekeepingInterval is how often dead sessions are pruned.
const DefaultHousekeepingInterval = time.Hour

// HousekeepingService periodically deletes expired and revoked sessions.
// Invitations are deliberately not swept here: stale pending rows are
// reclassified lazily on read, which keeps their history visible in the
// dashboard instead of silently disappearing.
type HousekeepingService struct {
	Store    store.Store
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

func (s *HousekeepingService) interval() time.Duration {
	if s.Interval > 0 {
		return s.Interval
	}
	return DefaultHousekeepingInterval
}

// Start launches the background loop. It runs one pass immediately so a
// long-stopped deployment is cleaned up right after boot.
func (s *HousekeepingService) Start(ctx context.Context) {
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(s.interval())
		defer ticker.Stop()

		s.runOnce(ctx)
		for {
			select {
			case <-ticker.C:
				s.runOnce(ctx)
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop signals the loop to exit and waits for the in-flight pass.
func (s *HousekeepingService) Stop() {
	if s.stopCh == nil {
		return
	}
	close(s.stopCh)
	<-s.doneCh
}

func (s *HousekeepingService) runOnce(ctx context.Context) {
	log := slogx.FromContext(ctx)

	n, err := s.Store.Sessions().DeleteDeadSessions(ctx, time.Now().UTC())
	if err != nil {
		log.Error("session cleanup failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		log.Info("pruned dead sessions", slog.Int64("count", n))
	}
}
