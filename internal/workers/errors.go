package workers

import "errors"

var (
	ErrJobRunning        = errors.New("TMDB enrichment is already running")
	ErrInvalidSchedule   = errors.New("invalid cron schedule")
	ErrCatalogUnreadable = errors.New("catalog could not be loaded")
)
