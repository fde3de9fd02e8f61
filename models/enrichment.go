package models

// EnrichStart is the 202 response of POST /import/enrich-tmdb.
type EnrichStart struct {
	Started bool   `json:"started"`
	Total   int64  `json:"total"`
	Message string `json:"message"`
}

// EnrichStatus is a snapshot of the enrichment job counters.
type EnrichStatus struct {
	Running bool  `json:"running"`
	Total   int64 `json:"total"`
	Current int64 `json:"current"`
	Updated int64 `json:"updated"`
	Errors  int64 `json:"errors"`
}

// RefreshOutcome classifies a single metadata refresh.
type RefreshOutcome int

const (
	RefreshUpdated RefreshOutcome = iota
	RefreshNotFound
	RefreshFailed
)

// String returns the metric label of the outcome.
func (o RefreshOutcome) String() string {
	switch o {
	case RefreshUpdated:
		return "updated"
	case RefreshNotFound:
		return "not_found"
	default:
		return "error"
	}
}

// RefreshOptions drive a metadata refresh of one catalog entry.
type RefreshOptions struct {
	Language     string
	IncludeAdult bool
	Force        bool
}
