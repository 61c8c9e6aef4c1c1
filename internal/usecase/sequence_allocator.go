package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tradein_valuation/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrSequenceUnavailable = errors.New("sequence number unavailable")

// SequenceAllocatorConfig bounds the transactional retry loop.
type SequenceAllocatorConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

func DefaultSequenceAllocatorConfig() SequenceAllocatorConfig {
	return SequenceAllocatorConfig{
		MaxAttempts: 5,
		BaseBackoff: 25 * time.Millisecond,
		MaxBackoff:  400 * time.Millisecond,
	}
}

// SequenceAllocator hands out strictly increasing sequence numbers.
//
// Each attempt is one serializable read-increment-write on the counter
// record. Contention is retried with capped exponential backoff. Once the
// attempts are spent the allocator falls back to a non-transactional
// increment: the submission still gets a number, but two callers racing in
// this window can receive the same one. The conditional create of the
// valuation record is what catches such a duplicate.
type SequenceAllocator struct {
	repo   interfaces.ISequenceCounterRepository
	cfg    SequenceAllocatorConfig
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewSequenceAllocator(repo interfaces.ISequenceCounterRepository, cfg SequenceAllocatorConfig, logger *zap.Logger) *SequenceAllocator {
	def := DefaultSequenceAllocatorConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = def.BaseBackoff
	}
	if cfg.MaxBackoff < cfg.BaseBackoff {
		cfg.MaxBackoff = cfg.BaseBackoff
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SequenceAllocator{repo: repo, cfg: cfg, logger: logger, sleep: sleepContext}
}

// Next claims the next sequence number.
func (a *SequenceAllocator) Next(ctx context.Context) (int64, error) {
	var lastErr error
	for attempt := 1; attempt <= a.cfg.MaxAttempts; attempt++ {
		n, err := a.repo.IncrementTx(ctx)
		if err == nil {
			return n, nil
		}
		lastErr = err
		if !errors.Is(err, interfaces.ErrSequenceContention) {
			a.logger.Warn("sequence transaction failed", zap.Int("attempt", attempt), zap.Error(err))
			break
		}
		if attempt == a.cfg.MaxAttempts {
			break
		}
		wait := a.backoff(attempt)
		a.logger.Debug("sequence contention, retrying", zap.Int("attempt", attempt), zap.Duration("backoff", wait))
		if err := a.sleep(ctx, wait); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrSequenceUnavailable, err)
		}
	}

	a.logger.Warn("sequence transaction exhausted, using best-effort increment",
		zap.Int("max_attempts", a.cfg.MaxAttempts),
		zap.Error(lastErr))

	n, err := a.repo.IncrementBestEffort(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: transactional: %v; best-effort: %v", ErrSequenceUnavailable, lastErr, err)
	}
	return n, nil
}

// backoff returns BaseBackoff * 2^(attempt-1), capped at MaxBackoff.
func (a *SequenceAllocator) backoff(attempt int) time.Duration {
	d := a.cfg.BaseBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= a.cfg.MaxBackoff {
			return a.cfg.MaxBackoff
		}
	}
	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
