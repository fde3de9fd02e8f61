package events

// Type names a domain event.
type Type string

const (
	MovieAdded   Type = "movie_added"
	MovieUpdated Type = "movie_updated"
	MovieDeleted Type = "movie_deleted"

	SeriesAdded   Type = "series_added"
	SeriesUpdated Type = "series_updated"
	SeriesDeleted Type = "series_deleted"

	CollectionImported Type = "collection_imported"

	UserCreated Type = "user_created"
	UserUpdated Type = "user_updated"

	EnrichStarted   Type = "tmdb_enrich_started"
	EnrichProgress  Type = "tmdb_enrich_progress"
	EnrichCancelled Type = "tmdb_enrich_cancelled"
	EnrichComplete  Type = "tmdb_enrich_complete"
)

// Envelope is the wire form of every event.
type Envelope struct {
	Type    Type `json:"type"`
	Payload any  `json:"payload"`
}

// Deleted is the payload of the *_deleted events.
type Deleted struct {
	ID string `json:"id"`
}

// Imported is the payload of collection_imported.
type Imported struct {
	Movies      int `json:"movies"`
	Series      int `json:"series"`
	Collections int `json:"collections"`
	Errors      int `json:"errors"`
}

// EnrichStartedPayload is the payload of tmdb_enrich_started.
type EnrichStartedPayload struct {
	Total int64 `json:"total"`
}

// EnrichProgressPayload is the payload of tmdb_enrich_progress.
type EnrichProgressPayload struct {
	Current     int64 `json:"current"`
	Total       int64 `json:"total"`
	Enriched    int64 `json:"enriched"`
	ErrorsCount int64 `json:"errors_count"`
}

// EnrichCancelledPayload is the payload of tmdb_enrich_cancelled.
type EnrichCancelledPayload struct {
	Current  int64 `json:"current"`
	Total    int64 `json:"total"`
	Enriched int64 `json:"enriched"`
}

// EnrichCompletePayload is the payload of tmdb_enrich_complete.
type EnrichCompletePayload struct {
	Total    int64 `json:"total"`
	Enriched int64 `json:"enriched"`
	Errors   int64 `json:"errors"`
}
