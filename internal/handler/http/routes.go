package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router:
//
//	GET /health, /version, /metrics, /ws       public
//	/api/v1/auth/{register,login,...}          public, rate limited per IP
//	/api/v1/...                                session gate
//	/api/v1/{users,settings,...}               session gate + admin role
//	/uploads/posters/*, /*                     static files
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.NotFound(notFound)
	router.MethodNotAllowed(checkHTTPMethod(router))

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/ws", h.subscribe)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(withGZip)
		if h.server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.server.RequestTimeout))
		}

		r.Get("/health", h.health)

		// routes without authorization
		r.Group(func(r chi.Router) {
			if h.server.AuthRateLimit > 0 {
				r.Use(httprate.LimitByIP(h.server.AuthRateLimit, time.Minute))
			}
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/forgot-password", h.forgotPassword)
			r.Post("/auth/reset-password", h.resetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.sessionGate)

			r.Get("/auth/me", h.me)
			r.Put("/auth/me/preferences", h.updatePreferences)

			r.Route("/movies", func(r chi.Router) {
				newCatalogRoutes(h.services.MovieService, catalogFilterFrom).mount(r, func(r chi.Router) {
					r.Post("/refresh-tmdb", h.refreshMovie)
					r.Post("/upload-poster", h.uploadPoster)
				})
			})
			r.Route("/series", func(r chi.Router) {
				newCatalogRoutes(h.services.SeriesService, catalogFilterFrom).mount(r, func(r chi.Router) {
					r.Post("/refresh-tmdb", h.refreshSeries)
				})
			})
			r.Route("/collections", func(r chi.Router) {
				newCatalogRoutes(h.services.CollectionService, collectionFilterFrom).mount(r, func(r chi.Router) {
					r.Get("/items", h.listCollectionItems)
					r.Post("/items", h.addCollectionItem)
					r.Delete("/items/{itemID}", h.removeCollectionItem)
				})
			})

			r.Post("/scan", h.scan)

			r.Route("/tmdb", func(r chi.Router) {
				r.Get("/search/movies", h.searchTMDBMovies)
				r.Get("/search/tv", h.searchTMDBTV)
				r.Get("/movies/{tmdbID}", h.getTMDBMovie)
				r.Get("/tv/{tmdbID}", h.getTMDBTV)
				r.Get("/search/collections", h.searchTMDBCollections)
				r.Get("/collections/{tmdbID}", h.getTMDBCollection)
			})

			r.Route("/import", func(r chi.Router) {
				r.Post("/csv", h.importCSV)
				r.Post("/enrich-tmdb", h.startEnrichment)
				r.Get("/enrich-tmdb/status", h.enrichmentStatus)
				r.With(h.requireAdmin).Post("/enrich-tmdb/cancel", h.cancelEnrichment)
			})

			// admin routes
			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Get("/settings", h.listSettings)
				r.Put("/settings/{key}", h.updateSetting)
				r.Post("/settings/test/tmdb", h.testTMDBConnection)

				r.Get("/users", h.listUsers)
				r.Post("/users", h.createUser)
				r.Put("/users/{id}/role", h.updateUserRole)
				r.Put("/users/{id}/password", h.setUserPassword)
				r.Delete("/users/{id}", h.deleteUser)
			})
		})
	})

	if h.app.UploadsDir != "" {
		router.Handle(posterURLPrefix+"*", http.StripPrefix(posterURLPrefix, http.FileServer(http.Dir(h.app.UploadsDir))))
	}
	if h.app.StaticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.app.StaticDir)))
	}

	return router
}
