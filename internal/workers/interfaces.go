// Package workers runs the background jobs of the server: the TMDB
// enrichment pipeline, which is started on demand, and the periodic
// cleanup of expired password reset tokens.
//
// Every job implements [Worker] so that the server can bind all of them to
// the process lifetime through the [Workers] aggregate.
package workers

import (
	"context"

	"github.com/MKhiriev/my-movies/models"
)

// Worker is a background job bound to the process lifetime.
//
// Run must not block: it starts whatever the worker needs and returns.
// Stop ends the worker and waits until all its goroutines have exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Enricher is the on-demand metadata enrichment job. At most one run is
// active per process.
type Enricher interface {
	// Start launches a run over the movies of userID and returns at once.
	// A run already in progress yields [ErrJobRunning].
	Start(ctx context.Context, userID string, force bool) (models.EnrichStart, error)
	// Cancel asks the active run to stop before its next item. It reports
	// whether a run was active.
	Cancel() bool
	Status() models.EnrichStatus
}
