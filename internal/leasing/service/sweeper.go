package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/havenlet/leasing/internal/leasing/store"
)

// SweeperService periodically expires overdue leases and prunes stale
// signing invites. The read paths already expire lazily; the sweeper exists
// so state converges even when nobody is looking, and so unsigned invites
// don't accumulate forever.
type SweeperService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewSweeperService creates a new sweeper with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewSweeperService(store store.Store, logger *slog.Logger, interval time.Duration) *SweeperService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &SweeperService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut it
// down gracefully.
func (s *SweeperService) Start() {
	go s.run()
	s.Logger.Info("sweeper service started", "interval", s.Interval)
}

// Stop shuts down the background worker. Blocks until any in-progress sweep
// has finished.
func (s *SweeperService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("sweeper service stopped")
}

func (s *SweeperService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep runs each task independently; a failure in one won't stop the others.
func (s *SweeperService) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.Store.Leases().ExpireOverdue(ctx, now); err != nil {
		s.Logger.Error("failed to expire overdue leases", "error", err)
	} else {
		s.Logger.Debug("expired overdue leases")
	}

	if err := s.Store.Invites().DeleteExpiredUnsignedInvites(ctx, now); err != nil {
		s.Logger.Error("failed to delete expired invites", "error", err)
	} else {
		s.Logger.Debug("deleted expired unsigned invites")
	}
}
