// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/metrics"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

// progressEvery is the number of items between two progress events.
const progressEvery = 10

// EnrichmentJob refreshes movies from TMDB one at a time, spaced by a fixed
// interval. Its state lives in atomics: a single worker goroutine writes the
// counters and everybody else only reads them.
type EnrichmentJob struct {
	movies    store.MovieRepository
	metadata  service.MetadataService
	publisher events.Publisher
	interval  time.Duration

	running   atomic.Bool
	cancelled atomic.Bool
	total     atomic.Int64
	current   atomic.Int64
	updated   atomic.Int64
	errors    atomic.Int64

	mu   sync.Mutex
	base context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	logger *logger.Logger
}

func NewEnrichmentJob(
	movies store.MovieRepository,
	metadata service.MetadataService,
	publisher events.Publisher,
	interval time.Duration,
	logger *logger.Logger,
) *EnrichmentJob {
	return &EnrichmentJob{
		movies:    movies,
		metadata:  metadata,
		publisher: publisher,
		interval:  interval,
		base:      context.Background(),
		logger:    logger,
	}
}

// Run binds future enrichment runs to ctx: cancelling it, or calling Stop,
// ends an active run at its next item.
func (j *EnrichmentJob) Run(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.base, j.stop = context.WithCancel(ctx)
}

// Stop cancels an active run and waits for it.
func (j *EnrichmentJob) Stop() {
	j.mu.Lock()
	stop := j.stop
	j.mu.Unlock()

	if stop != nil {
		stop()
	}
	j.wg.Wait()
}

// Wait blocks until the active run, if any, has finished.
func (j *EnrichmentJob) Wait() {
	j.wg.Wait()
}

// Start implements [Enricher]. Without force only movies lacking a TMDB id
// or a poster are refreshed. When nothing qualifies no run is started.
func (j *EnrichmentJob) Start(ctx context.Context, userID string, force bool) (models.EnrichStart, error) {
	log := logger.FromContext(ctx)

	if j.running.Load() {
		return models.EnrichStart{}, ErrJobRunning
	}

	all, err := j.movies.ListAll(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*EnrichmentJob.Start").Msg("loading movies failed")
		return models.EnrichStart{}, fmt.Errorf("%w: %w", ErrCatalogUnreadable, err)
	}

	pending := make([]models.Movie, 0, len(all))
	for _, movie := range all {
		if force || movie.TMDBID == nil || !movie.HasPoster() {
			pending = append(pending, movie)
		}
	}
	if len(pending) == 0 {
		return models.EnrichStart{Started: false, Total: 0, Message: "All movies already have TMDB data"}, nil
	}

	if !j.running.CompareAndSwap(false, true) {
		return models.EnrichStart{}, ErrJobRunning
	}

	total := int64(len(pending))
	j.total.Store(total)
	j.current.Store(0)
	j.updated.Store(0)
	j.errors.Store(0)
	j.cancelled.Store(false)
	metrics.EnrichmentRunning.Set(1)

	opts := j.metadata.RefreshOptionsFor(ctx, userID, force)

	j.mu.Lock()
	runCtx := log.With().Str("job", "tmdb_enrich").Str("user_id", userID).Logger().WithContext(j.base)
	j.wg.Add(1)
	j.mu.Unlock()

	j.publish(runCtx, userID, events.EnrichStarted, events.EnrichStartedPayload{Total: total})
	log.Info().Str("user_id", userID).Int64("total", total).Bool("force", force).Msg("TMDB enrichment started")

	go j.run(runCtx, userID, pending, opts)

	return models.EnrichStart{
		Started: true,
		Total:   total,
		Message: fmt.Sprintf("TMDB enrichment started for %d movies", total),
	}, nil
}

// Cancel implements [Enricher].
func (j *EnrichmentJob) Cancel() bool {
	if !j.running.Load() {
		return false
	}
	j.cancelled.Store(true)
	return true
}

// Status implements [Enricher].
func (j *EnrichmentJob) Status() models.EnrichStatus {
	return models.EnrichStatus{
		Running: j.running.Load(),
		Total:   j.total.Load(),
		Current: j.current.Load(),
		Updated: j.updated.Load(),
		Errors:  j.errors.Load(),
	}
}

func (j *EnrichmentJob) run(ctx context.Context, userID string, movies []models.Movie, opts models.RefreshOptions) {
	defer j.wg.Done()

	log := logger.FromContext(ctx)
	limiter := rate.NewLimiter(rate.Every(j.interval), 1)
	total := j.total.Load()

	for _, movie := range movies {
		if j.cancelled.Load() || limiter.Wait(ctx) != nil {
			j.finish("cancelled")
			j.publish(ctx, userID, events.EnrichCancelled, events.EnrichCancelledPayload{
				Current:  j.current.Load(),
				Total:    total,
				Enriched: j.updated.Load(),
			})
			log.Info().Int64("current", j.current.Load()).Int64("total", total).Msg("TMDB enrichment cancelled")
			return
		}

		_, outcome, err := j.metadata.RefreshMovieEntry(ctx, movie, opts)
		switch outcome {
		case models.RefreshUpdated:
			j.updated.Add(1)
		case models.RefreshFailed:
			j.errors.Add(1)
			log.Warn().Err(err).Str("movie_id", movie.ID).Msg("TMDB refresh failed")
		}
		metrics.EnrichmentItems.WithLabelValues(outcome.String()).Inc()

		current := j.current.Add(1)
		if current%progressEvery == 0 || current == total {
			j.publish(ctx, userID, events.EnrichProgress, events.EnrichProgressPayload{
				Current:     current,
				Total:       total,
				Enriched:    j.updated.Load(),
				ErrorsCount: j.errors.Load(),
			})
		}
	}

	j.finish("complete")
	j.publish(ctx, userID, events.EnrichComplete, events.EnrichCompletePayload{
		Total:    total,
		Enriched: j.updated.Load(),
		Errors:   j.errors.Load(),
	})
	log.Info().Int64("total", total).Int64("updated", j.updated.Load()).Int64("errors", j.errors.Load()).Msg("TMDB enrichment complete")
}

func (j *EnrichmentJob) finish(state string) {
	j.running.Store(false)
	metrics.EnrichmentRunning.Set(0)
	metrics.EnrichmentRuns.WithLabelValues(state).Inc()
}

func (j *EnrichmentJob) publish(ctx context.Context, userID string, t events.Type, payload any) {
	if j.publisher == nil {
		return
	}
	if err := j.publisher.Publish(ctx, userID, t, payload); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*EnrichmentJob.publish").Str("type", string(t)).Msg("event not published")
	}
}
