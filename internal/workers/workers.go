package workers

import (
	"context"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/store"
)

type Workers struct {
	Enrichment *EnrichmentJob

	workers []Worker
}

func NewWorkers(
	repos *store.Repositories,
	services *service.Services,
	publisher events.Publisher,
	cfg config.Workers,
	logger *logger.Logger,
) (*Workers, error) {
	janitor, err := NewResetTokenJanitor(repos.UserRepository, cfg.ResetTokenCleanupSchedule, logger)
	if err != nil {
		return nil, err
	}

	enrichment := NewEnrichmentJob(repos.MovieRepository, services.MetadataService, publisher, cfg.EnrichInterval, logger)

	return &Workers{
		Enrichment: enrichment,
		workers:    []Worker{enrichment, janitor},
	}, nil
}

// Run starts every worker in registration order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
