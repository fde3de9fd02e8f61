package models

import "time"

// SeriesDetails are the series-specific optional attributes.
type SeriesDetails struct {
	Identifiers
	Production
	MediaInfo
	Ownership

	FirstAired   *string `json:"first_aired,omitempty"`
	AirTime      *string `json:"air_time,omitempty"`
	Network      *string `json:"network,omitempty"`
	EpisodeCount *int64  `json:"episode_count,omitempty" validate:"omitempty,min=0"`
	Status       *string `json:"status,omitempty"`
	SeriesGroup  *string `json:"series_group,omitempty"`
}

// Series is a physical TV series release owned by a user.
type Series struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`

	SeriesDetails

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Series model.
func (s Series) TableName() string {
	return "series"
}

// CreateSeries is the payload of POST /series.
type CreateSeries struct {
	Title string `json:"title" validate:"required,notblank,max=500"`

	SeriesDetails
}

// UpdateSeries is the payload of PUT /series/{id}. Only non-nil fields are written.
type UpdateSeries struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`

	SeriesDetails
}
