package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/store"
)

// ResetTokenJanitor periodically clears password reset tokens whose expiry
// has passed, so that stale hashes do not stay in the user table.
type ResetTokenJanitor struct {
	users    store.UserRepository
	schedule cron.Schedule
	now      func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
	ctx  context.Context

	logger *logger.Logger
}

// NewResetTokenJanitor parses spec with the standard cron parser, which also
// accepts descriptors such as "@every 15m" and "@hourly".
func NewResetTokenJanitor(users store.UserRepository, spec string, logger *logger.Logger) (*ResetTokenJanitor, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, err)
	}

	return &ResetTokenJanitor{
		users:    users,
		schedule: schedule,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}, nil
}

// Run starts the cron scheduler. It returns immediately.
func (j *ResetTokenJanitor) Run(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron != nil {
		return
	}

	j.ctx = j.logger.WithContext(ctx)
	j.cron = cron.New()
	j.cron.Schedule(j.schedule, cron.FuncJob(func() { j.Sweep(j.ctx) }))
	j.cron.Start()

	j.logger.Info().Str("next", j.schedule.Next(time.Now()).Format(time.RFC3339)).Msg("reset token janitor started")
}

// Stop stops the scheduler and waits for a running sweep.
func (j *ResetTokenJanitor) Stop() {
	j.mu.Lock()
	c := j.cron
	j.cron = nil
	j.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// Sweep clears every expired reset token once and returns how many were cleared.
func (j *ResetTokenJanitor) Sweep(ctx context.Context) int64 {
	cleared, err := j.users.ClearExpiredResetTokens(ctx, j.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ResetTokenJanitor.Sweep").Msg("clearing expired reset tokens failed")
		return 0
	}
	if cleared > 0 {
		logger.FromContext(ctx).Info().Int64("cleared", cleared).Msg("expired reset tokens cleared")
	}
	return cleared
}
