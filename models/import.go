package models

// ImportResult summarizes a CSV import.
type ImportResult struct {
	MoviesImported      int      `json:"movies_imported"`
	SeriesImported      int      `json:"series_imported"`
	CollectionsImported int      `json:"collections_imported"`
	Errors              []string `json:"errors"`
}
