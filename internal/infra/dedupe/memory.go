// Package dedupe provides the idempotency ledger that suppresses duplicate
// processing of redelivered status updates.
//
// The in-memory implementation is correct for a single instance only.
// Horizontally scaled deployments need a shared keyed store with TTL behind
// the same service.ProcessedLedger interface.
package dedupe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"khojo/config"
	"khojo/internal/domain/service"
)

const (
	defaultTTL           = 24 * time.Hour
	defaultSweepInterval = 10 * time.Minute
)

// memoryLedger is a mutex-guarded id set with per-entry expiry.
type memoryLedger struct {
	mu      sync.Mutex
	entries map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
	cancel  context.CancelFunc
}

// NewMemoryLedger creates an in-process ledger whose entries expire after ttl.
// A non-positive ttl falls back to 24h, comfortably beyond the platform's
// redelivery window. A background janitor sweeps expired ids until Close.
func NewMemoryLedger(ttl time.Duration, logger *slog.Logger) service.ProcessedLedger {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	ctx, cancel := context.WithCancel(context.Background())
	ledger := &memoryLedger{
		entries: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
		cancel:  cancel,
	}

	go ledger.sweep(ctx, logger)

	return ledger
}

// New builds the production ledger from the configured TTL.
func New(cfg *config.Config, logger *slog.Logger) service.ProcessedLedger {
	var ttl time.Duration
	if cfg.Webhook != nil {
		ttl = cfg.Webhook.DedupeTTL
	}

	return NewMemoryLedger(ttl, logger)
}

// Seen reports whether id was recorded and has not expired.
func (l *memoryLedger) Seen(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiry, ok := l.entries[id]

	return ok && l.now().Before(expiry)
}

// MarkSeen records id, refreshing its expiry.
func (l *memoryLedger) MarkSeen(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[id] = l.now().Add(l.ttl)
}

// Observe is the atomic check-then-set: it reports whether id is new and
// records it under a single lock so two concurrent deliveries of the same
// status cannot both observe "first".
func (l *memoryLedger) Observe(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expiry, ok := l.entries[id]; ok && now.Before(expiry) {
		return false
	}
	l.entries[id] = now.Add(l.ttl)

	return true
}

// Close stops the janitor.
func (l *memoryLedger) Close() {
	l.cancel()
}

func (l *memoryLedger) sweep(ctx context.Context, logger *slog.Logger) {
	ticker := time.NewTicker(defaultSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := l.removeExpired()
			if removed > 0 && logger != nil {
				logger.Debug("Swept expired idempotency entries", slog.Int("removed", removed))
			}
		}
	}
}

func (l *memoryLedger) removeExpired() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, expiry := range l.entries {
		if !now.Before(expiry) {
			delete(l.entries, id)
			removed++
		}
	}

	return removed
}
