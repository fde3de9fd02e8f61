package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/store"
	"github.com/MKhiriev/my-movies/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeMovies struct {
	store.MovieRepository
	rows []models.Movie
	err  error
}

func (f *fakeMovies) ListAll(context.Context, string) ([]models.Movie, error) {
	return f.rows, f.err
}

type fakeMetadata struct {
	service.MetadataService
	refreshFn func(ctx context.Context, movie models.Movie) (models.RefreshOutcome, error)

	mu    sync.Mutex
	calls []string
}

func (f *fakeMetadata) RefreshOptionsFor(_ context.Context, _ string, force bool) models.RefreshOptions {
	return models.RefreshOptions{Language: models.DefaultLanguage, Force: force}
}

func (f *fakeMetadata) RefreshMovieEntry(ctx context.Context, movie models.Movie, _ models.RefreshOptions) (models.Movie, models.RefreshOutcome, error) {
	f.mu.Lock()
	f.calls = append(f.calls, movie.ID)
	f.mu.Unlock()

	if f.refreshFn == nil {
		return movie, models.RefreshUpdated, nil
	}
	outcome, err := f.refreshFn(ctx, movie)
	return movie, outcome, err
}

func (f *fakeMetadata) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type recordedEvent struct {
	Type    events.Type
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, t events.Type, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: t, Payload: payload})
	return nil
}

func (p *recordingPublisher) snapshot() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedEvent(nil), p.events...)
}

func (p *recordingPublisher) count(t events.Type) int {
	n := 0
	for _, e := range p.snapshot() {
		if e.Type == t {
			n++
		}
	}
	return n
}

func bareMovies(n int) []models.Movie {
	rows := make([]models.Movie, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, models.Movie{ID: fmt.Sprintf("m%d", i), UserID: "u1", Title: fmt.Sprintf("Movie %d", i)})
	}
	return rows
}

func newTestJob(rows []models.Movie, meta *fakeMetadata) (*EnrichmentJob, *recordingPublisher) {
	pub := &recordingPublisher{}
	job := NewEnrichmentJob(&fakeMovies{rows: rows}, meta, pub, time.Millisecond, logger.Nop())
	job.Run(context.Background())
	return job, pub
}

// ─────────────────────────────────────────────
// Start
// ─────────────────────────────────────────────

func TestEnrichment_CompleteRun(t *testing.T) {
	meta := &fakeMetadata{refreshFn: func(_ context.Context, m models.Movie) (models.RefreshOutcome, error) {
		switch m.ID {
		case "m3", "m6":
			return models.RefreshNotFound, nil
		case "m5":
			return models.RefreshFailed, errors.New("boom")
		}
		return models.RefreshUpdated, nil
	}}
	job, pub := newTestJob(bareMovies(12), meta)

	start, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.True(t, start.Started)
	assert.Equal(t, int64(12), start.Total)

	job.Wait()

	assert.Equal(t, models.EnrichStatus{Running: false, Total: 12, Current: 12, Updated: 9, Errors: 1}, job.Status())

	got := pub.snapshot()
	require.Len(t, got, 4)
	assert.Equal(t, events.EnrichStarted, got[0].Type)
	assert.Equal(t, events.EnrichProgressPayload{Current: 10, Total: 12, Enriched: 7, ErrorsCount: 1}, got[1].Payload)
	assert.Equal(t, events.EnrichProgressPayload{Current: 12, Total: 12, Enriched: 9, ErrorsCount: 1}, got[2].Payload)
	assert.Equal(t, events.EnrichCompletePayload{Total: 12, Enriched: 9, Errors: 1}, got[3].Payload)
}

func TestEnrichment_FiltersUnlessForced(t *testing.T) {
	tmdbID := int64(550)
	poster := "/p.jpg"
	uploaded := "/uploads/posters/uploaded.jpg"
	rows := []models.Movie{
		{ID: "done", MovieDetails: models.MovieDetails{
			Identifiers: models.Identifiers{TMDBID: &tmdbID},
			Production:  models.Production{PosterPath: &poster},
		}},
		{ID: "uploaded", MovieDetails: models.MovieDetails{
			Identifiers: models.Identifiers{TMDBID: &tmdbID},
			Production:  models.Production{PosterPath: &uploaded},
		}},
		{ID: "no-poster", MovieDetails: models.MovieDetails{Identifiers: models.Identifiers{TMDBID: &tmdbID}}},
		{ID: "no-id", MovieDetails: models.MovieDetails{Production: models.Production{PosterPath: &poster}}},
	}

	t.Run("missing data only", func(t *testing.T) {
		meta := &fakeMetadata{}
		job, _ := newTestJob(rows, meta)

		start, err := job.Start(context.Background(), "u1", false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), start.Total)
		job.Wait()
		assert.Equal(t, []string{"no-poster", "no-id"}, meta.calls)
	})

	t.Run("forced", func(t *testing.T) {
		meta := &fakeMetadata{}
		job, _ := newTestJob(rows, meta)

		start, err := job.Start(context.Background(), "u1", true)
		require.NoError(t, err)
		assert.Equal(t, int64(4), start.Total)
		job.Wait()
		assert.Equal(t, 4, meta.callCount())
	})
}

func TestEnrichment_NothingToDo(t *testing.T) {
	job, pub := newTestJob(nil, &fakeMetadata{})

	start, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.False(t, start.Started)
	assert.Zero(t, start.Total)
	assert.False(t, job.Status().Running)
	assert.Empty(t, pub.snapshot())
}

func TestEnrichment_CatalogError(t *testing.T) {
	pub := &recordingPublisher{}
	job := NewEnrichmentJob(&fakeMovies{err: store.ErrTransient}, &fakeMetadata{}, pub, time.Millisecond, logger.Nop())

	_, err := job.Start(context.Background(), "u1", false)
	require.ErrorIs(t, err, ErrCatalogUnreadable)
	assert.False(t, job.Status().Running)
}

func TestEnrichment_SecondStartConflicts(t *testing.T) {
	release := make(chan struct{})
	meta := &fakeMetadata{refreshFn: func(context.Context, models.Movie) (models.RefreshOutcome, error) {
		<-release
		return models.RefreshUpdated, nil
	}}
	job, _ := newTestJob(bareMovies(2), meta)

	_, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)

	_, err = job.Start(context.Background(), "u1", false)
	require.ErrorIs(t, err, ErrJobRunning)

	close(release)
	job.Wait()
	assert.False(t, job.Status().Running)
}

// ─────────────────────────────────────────────
// Cancel
// ─────────────────────────────────────────────

func TestEnrichment_CancelStopsAtNextItem(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	meta := &fakeMetadata{refreshFn: func(context.Context, models.Movie) (models.RefreshOutcome, error) {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
		return models.RefreshUpdated, nil
	}}
	job, pub := newTestJob(bareMovies(5), meta)

	_, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)

	<-entered
	assert.True(t, job.Cancel())
	close(release)
	job.Wait()

	status := job.Status()
	assert.False(t, status.Running)
	assert.Equal(t, int64(1), status.Current)
	assert.Equal(t, 1, meta.callCount())

	assert.Equal(t, 1, pub.count(events.EnrichCancelled))
	assert.Zero(t, pub.count(events.EnrichComplete))
	last := pub.snapshot()[len(pub.snapshot())-1]
	assert.Equal(t, events.EnrichCancelledPayload{Current: 1, Total: 5, Enriched: 1}, last.Payload)
}

func TestEnrichment_CancelWithoutRun(t *testing.T) {
	job, _ := newTestJob(bareMovies(1), &fakeMetadata{})
	assert.False(t, job.Cancel())
}

func TestEnrichment_CancellationDoesNotLeakIntoNextRun(t *testing.T) {
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	first := true
	meta := &fakeMetadata{refreshFn: func(context.Context, models.Movie) (models.RefreshOutcome, error) {
		if first {
			first = false
			entered <- struct{}{}
			<-release
		}
		return models.RefreshUpdated, nil
	}}
	job, pub := newTestJob(bareMovies(3), meta)

	_, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)
	<-entered
	job.Cancel()
	close(release)
	job.Wait()

	_, err = job.Start(context.Background(), "u1", false)
	require.NoError(t, err)
	job.Wait()

	assert.Equal(t, int64(3), job.Status().Current)
	assert.Equal(t, 1, pub.count(events.EnrichComplete))
}

func TestEnrichment_StopEndsActiveRun(t *testing.T) {
	release := make(chan struct{})
	meta := &fakeMetadata{refreshFn: func(context.Context, models.Movie) (models.RefreshOutcome, error) {
		<-release
		return models.RefreshUpdated, nil
	}}
	job, pub := newTestJob(bareMovies(3), meta)

	_, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()
	job.Stop()

	assert.False(t, job.Status().Running)
	assert.Equal(t, 1, pub.count(events.EnrichCancelled))
}

func TestEnrichment_ThrottlesItems(t *testing.T) {
	pub := &recordingPublisher{}
	meta := &fakeMetadata{}
	job := NewEnrichmentJob(&fakeMovies{rows: bareMovies(3)}, meta, pub, 30*time.Millisecond, logger.Nop())
	job.Run(context.Background())

	began := time.Now()
	_, err := job.Start(context.Background(), "u1", false)
	require.NoError(t, err)
	job.Wait()

	assert.GreaterOrEqual(t, time.Since(began), 50*time.Millisecond)
}
