package service

import (
	"context"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"focusd/internal/modules/timesync/domain"
	timesyncout "focusd/internal/modules/timesync/port/out"
	"focusd/internal/platform/clock"
)

// TimeService reconciles the local clock against an ordered list of reference
// servers and exposes corrected time. A failed sync never disturbs the
// previously held offset; with no successful sync ever, the offset is zero
// and local time is trusted.
type TimeService struct {
	clock   clock.Clock
	client  timesyncout.ReferenceClient
	servers []string
	timeout time.Duration
	logger  hclog.Logger

	mu     sync.RWMutex
	sample domain.Sample
}

func NewTimeService(clk clock.Clock, client timesyncout.ReferenceClient, servers []string, timeout time.Duration, logger hclog.Logger) *TimeService {
	return &TimeService{
		clock:   clk,
		client:  client,
		servers: servers,
		timeout: timeout,
		logger:  logger,
	}
}

// Sync tries each server in order and keeps the first answer. The returned
// sample reflects the offset held after the attempt; Server is empty when no
// server answered this round.
func (s *TimeService) Sync(ctx context.Context) domain.Sample {
	for _, server := range s.servers {
		offset, err := s.client.Query(ctx, server, s.timeout)
		if err != nil {
			s.logger.Debug("time reference unreachable", "server", server, "error", err)
			continue
		}
		sample := domain.Sample{LocalNow: s.clock.Now(), Offset: offset, Server: server}
		s.mu.Lock()
		s.sample = sample
		s.mu.Unlock()
		s.logger.Info("time synchronized", "server", server, "offset", offset)
		return sample
	}
	s.logger.Warn("could not sync with any time server, using local clock")
	s.mu.RLock()
	held := s.sample.Offset
	s.mu.RUnlock()
	return domain.Sample{LocalNow: s.clock.Now(), Offset: held}
}

// Now never blocks on network I/O.
func (s *TimeService) Now() time.Time {
	s.mu.RLock()
	offset := s.sample.Offset
	s.mu.RUnlock()
	return s.clock.Now().Add(offset)
}

func (s *TimeService) Sample() domain.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sample
}

// RunResyncLoop re-syncs on a fixed period until ctx is done. It is meant to
// run on its own goroutine.
func (s *TimeService) RunResyncLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sync(ctx)
		}
	}
}
