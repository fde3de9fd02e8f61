package models

import "time"

// CollectionDetails are the box-set attributes: identification, disc and
// ownership data but no production metadata of its own.
type CollectionDetails struct {
	Barcode       *string `json:"barcode,omitempty"`
	TMDBID        *int64  `json:"tmdb_id,omitempty"`
	OriginalTitle *string `json:"original_title,omitempty"`
	SortTitle     *string `json:"sort_title,omitempty"`
	Description   *string `json:"description,omitempty"`
	PosterPath    *string `json:"poster_path,omitempty"`

	MediaInfo
	Ownership
}

// Collection is a user-owned box set grouping movies and series.
type Collection struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`

	CollectionDetails

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Collection model.
func (c Collection) TableName() string {
	return "collections"
}

// CreateCollection is the payload of POST /collections.
type CreateCollection struct {
	Title string `json:"title" validate:"required,notblank,max=500"`

	CollectionDetails
}

// UpdateCollection is the payload of PUT /collections/{id}.
type UpdateCollection struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`

	CollectionDetails
}

// ItemType tells which table a [CollectionItem] points to.
type ItemType string

const (
	ItemTypeMovie  ItemType = "movie"
	ItemTypeSeries ItemType = "series"
)

// CollectionItem links a movie or a series into a collection.
// Exactly one of MovieID and SeriesID is set, matching ItemType.
type CollectionItem struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collection_id"`
	ItemType     ItemType  `json:"item_type"`
	MovieID      *string   `json:"movie_id,omitempty"`
	SeriesID     *string   `json:"series_id,omitempty"`
	Position     int64     `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the CollectionItem model.
func (c CollectionItem) TableName() string {
	return "collection_items"
}

// AddCollectionItem is the payload of POST /collections/{id}/items.
type AddCollectionItem struct {
	ItemType ItemType `json:"item_type" validate:"required,oneof=movie series"`
	MovieID  *string  `json:"movie_id" validate:"required_if=ItemType movie,excluded_if=ItemType series"`
	SeriesID *string  `json:"series_id" validate:"required_if=ItemType series,excluded_if=ItemType movie"`
	Position *int64   `json:"position" validate:"omitempty,min=0"`
}
