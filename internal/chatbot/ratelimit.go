package chatbot

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultMinInterval is the minimum gap between upstream attempts
	// from the same caller.
	DefaultMinInterval = 3 * time.Second

	// DefaultRetention bounds how long idle limiter entries are kept.
	DefaultRetention = time.Hour
)

// Limiter throttles upstream attempts per caller identity. It holds only
// ephemeral state; entries are lost on restart, which is fine because the
// limit is advisory rather than a security boundary.
type Limiter struct {
	minInterval time.Duration
	retention   time.Duration

	mu   sync.Mutex
	last map[string]time.Time

	now func() time.Time
}

func NewLimiter(minInterval, retention time.Duration) *Limiter {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Limiter{
		minInterval: minInterval,
		retention:   retention,
		last:        make(map[string]time.Time),
		now:         time.Now,
	}
}

// Admit reports whether callerID may attempt an upstream call now.
func (l *Limiter) Admit(callerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, ok := l.last[callerID]
	if !ok {
		return true
	}
	return l.now().Sub(last) >= l.minInterval
}

// Record marks an upstream attempt for callerID. Call it immediately after
// a successful Admit, before the upstream call, so rapid repeats stay
// throttled even while a slow call is in flight.
func (l *Limiter) Record(callerID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last[callerID] = l.now()
}

// Cleanup drops entries older than the retention window and returns how
// many were removed.
func (l *Limiter) Cleanup() int {
	cutoff := l.now().Add(-l.retention)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for id, ts := range l.last {
		if ts.Before(cutoff) {
			delete(l.last, id)
			removed++
		}
	}
	return removed
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.last)
}

// Start sweeps expired entries on the given interval until ctx is
// canceled. Missing a sweep is harmless; the map just stays bigger.
func (l *Limiter) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	log.Info().Dur("interval", interval).Msg("rate limiter sweep started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("rate limiter sweep stopped")
			return
		case <-ticker.C:
			if n := l.Cleanup(); n > 0 {
				log.Debug().Int("removed", n).Int("remaining", l.size()).Msg("rate limiter cleanup")
			}
		}
	}
}
