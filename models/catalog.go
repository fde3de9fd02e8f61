// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Attribute groups shared by the catalog entities. Every field is optional:
// a nil pointer means "not set" on read and "leave unchanged" on patch.

// Identifiers links a catalog entry to a physical product and to the
// external metadata providers.
type Identifiers struct {
	Barcode       *string `json:"barcode,omitempty"`
	TMDBID        *int64  `json:"tmdb_id,omitempty"`
	IMDbID        *string `json:"imdb_id,omitempty"`
	OriginalTitle *string `json:"original_title,omitempty"`
	SortTitle     *string `json:"sort_title,omitempty"`
	PersonalTitle *string `json:"personal_title,omitempty"`
}

// Production describes the release itself.
type Production struct {
	Description         *string  `json:"description,omitempty"`
	Tagline             *string  `json:"tagline,omitempty"`
	ProductionYear      *int64   `json:"production_year,omitempty" validate:"omitempty,min=1870,max=2200"`
	ReleaseDate         *string  `json:"release_date,omitempty"`
	RunningTime         *int64   `json:"running_time,omitempty" validate:"omitempty,min=0"`
	Actors              *string  `json:"actors,omitempty"`
	ProductionCompanies *string  `json:"production_companies,omitempty"`
	ProductionCountries *string  `json:"production_countries,omitempty"`
	Studios             *string  `json:"studios,omitempty"`
	RatingTMDB          *float64 `json:"rating_tmdb,omitempty" validate:"omitempty,min=0,max=10"`
	PersonalRating      *float64 `json:"personal_rating,omitempty" validate:"omitempty,min=0,max=10"`
	Genres              *string  `json:"genres,omitempty"`
	Categories          *string  `json:"categories,omitempty"`
	Tags                *string  `json:"tags,omitempty"`
	Watched             *bool    `json:"watched,omitempty"`
	PosterPath          *string  `json:"poster_path,omitempty"`
	BackdropPath        *string  `json:"backdrop_path,omitempty"`
}

// MediaInfo describes the disc.
type MediaInfo struct {
	DiscType      *string `json:"disc_type,omitempty"`
	RegionCodes   *string `json:"region_codes,omitempty"`
	VideoStandard *string `json:"video_standard,omitempty"`
	AspectRatio   *string `json:"aspect_ratio,omitempty"`
	AudioTracks   *string `json:"audio_tracks,omitempty"`
	Subtitles     *string `json:"subtitles,omitempty"`
	Is3D          *bool   `json:"is_3d,omitempty"`
	Is4K          *bool   `json:"is_4k,omitempty"`
}

// Ownership describes the physical copy: condition, purchase, value,
// lending and storage location.
type Ownership struct {
	Condition        *string  `json:"condition,omitempty"`
	HasSlipcover     *bool    `json:"has_slipcover,omitempty"`
	CoverType        *string  `json:"cover_type,omitempty"`
	Edition          *string  `json:"edition,omitempty"`
	PurchaseDate     *string  `json:"purchase_date,omitempty"`
	PurchasePrice    *float64 `json:"purchase_price,omitempty" validate:"omitempty,min=0"`
	PurchaseCurrency *string  `json:"purchase_currency,omitempty" validate:"omitempty,max=8"`
	PurchasePlace    *string  `json:"purchase_place,omitempty"`
	ValueDate        *string  `json:"value_date,omitempty"`
	ValuePrice       *float64 `json:"value_price,omitempty" validate:"omitempty,min=0"`
	ValueCurrency    *string  `json:"value_currency,omitempty" validate:"omitempty,max=8"`
	LentTo           *string  `json:"lent_to,omitempty"`
	LentDue          *string  `json:"lent_due,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// Sort orders accepted by list filters.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Paging defaults for list endpoints.
const (
	DefaultListLimit = 50
	MaxListLimit     = 1000

	// MaxScanRows caps full-catalog scans (duplicate grouping, enrichment).
	MaxScanRows = 10000
)

// ListOptions are the paging and ordering parameters shared by every filter.
type ListOptions struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
	Limit     uint64 `json:"limit"`
	Offset    uint64 `json:"offset"`
}

// Normalize applies the paging defaults.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit == 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.SortOrder != SortDesc {
		o.SortOrder = SortAsc
	}
	return o
}

// Paging returns the paging and ordering part of a filter.
func (o ListOptions) Paging() ListOptions {
	return o
}

// CatalogFilter narrows list and count queries for movies and series.
type CatalogFilter struct {
	Search   *string
	Genre    *string
	DiscType *string
	Watched  *bool
	YearFrom *int64
	YearTo   *int64

	ListOptions
}

// CollectionFilter narrows list and count queries for collections.
type CollectionFilter struct {
	Search *string

	ListOptions
}

// Page is the {items,total,limit,offset} envelope of list endpoints.
type Page[T any] struct {
	Items  []T    `json:"items"`
	Total  int64  `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// DuplicateQuery asks whether an entry that is about to be created already exists.
type DuplicateQuery struct {
	Title   string
	Barcode *string
	TMDBID  *int64
}

// DuplicateCheck is the response of the check-duplicates endpoints.
type DuplicateCheck[T any] struct {
	HasDuplicates bool `json:"has_duplicates"`
	Duplicates    []T  `json:"duplicates"`
}

// DuplicateGroups is the response of the duplicates endpoints.
type DuplicateGroups[T any] struct {
	Groups      [][]T `json:"duplicate_groups"`
	TotalGroups int   `json:"total_groups"`
}
