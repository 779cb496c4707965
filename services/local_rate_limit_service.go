package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalRateLimitService is an in-process token bucket per key. Limits are not shared
// between replicas.
type LocalRateLimitService struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	now      func() time.Time
}

var _ RateLimiter = (*LocalRateLimitService)(nil)

func NewLocalRateLimitService() *LocalRateLimitService {
	return &LocalRateLimitService{
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
	}
}

func (s *LocalRateLimitService) CheckLimit(_ context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := s.now()

	s.mu.Lock()
	entry, ok := s.limiters[key]
	if !ok {
		every := window / time.Duration(limit)
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Every(every), limit)}
		s.limiters[key] = entry
	}
	entry.lastSeen = now
	limiter := entry.limiter
	s.mu.Unlock()

	res := limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, window, nil
	}
	delay := res.DelayFrom(now)
	if delay == 0 {
		return true, 0, nil
	}
	res.CancelAt(now)
	return false, delay, nil
}

// Run evicts limiters idle for longer than idle until ctx is done.
func (s *LocalRateLimitService) Run(ctx context.Context, idle time.Duration) {
	ticker := time.NewTicker(idle)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evict(idle)
		case <-ctx.Done():
			return
		}
	}
}

func (s *LocalRateLimitService) evict(idle time.Duration) {
	cutoff := s.now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(s.limiters, key)
		}
	}
}
