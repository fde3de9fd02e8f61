package http

import (
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/my-movies/internal/config"
	"github.com/MKhiriev/my-movies/internal/events"
	"github.com/MKhiriev/my-movies/internal/logger"
	"github.com/MKhiriev/my-movies/internal/service"
	"github.com/MKhiriev/my-movies/internal/workers"
)

// EventSource hands out subscriptions to the event bus.
type EventSource interface {
	Subscribe() *events.Subscription
}

type Handler struct {
	services *service.Services
	enricher workers.Enricher
	events   EventSource

	app    config.App
	server config.Server

	upgrader websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	enricher workers.Enricher,
	events EventSource,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	h := &Handler{
		services: services,
		enricher: enricher,
		events:   events,
		app:      cfg.App,
		server:   cfg.Server,
		logger:   logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}
