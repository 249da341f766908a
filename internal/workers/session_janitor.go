package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/store"
)

// SessionJanitor periodically removes expired sessions from the session
// store.
type SessionJanitor struct {
	storage  store.SessionStorage
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionJanitor(storage store.SessionStorage, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		storage:  storage,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run purges expired sessions every interval until ctx is cancelled. A failed
// purge is logged and retried on the next tick.
func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *SessionJanitor) purge(ctx context.Context) {
	removed, err := j.storage.PurgeExpired(ctx, j.now().UTC())
	if err != nil {
		j.logger.Err(err).Str("func", "*SessionJanitor.purge").Msg("error purging expired sessions")
		return
	}
	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("expired sessions purged")
	}
}
