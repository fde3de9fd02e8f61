package models

import "time"

// MovieDetails are the movie-specific optional attributes.
type MovieDetails struct {
	Identifiers
	Production
	MediaInfo
	Ownership

	Director   *string `json:"director,omitempty"`
	MovieGroup *string `json:"movie_group,omitempty"`
	Budget     *int64  `json:"budget,omitempty" validate:"omitempty,min=0"`
	Revenue    *int64  `json:"revenue,omitempty" validate:"omitempty,min=0"`
}

// Movie is a physical movie release owned by a user.
type Movie struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Title  string `json:"title"`

	MovieDetails

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// HasPoster reports whether any poster is attached to the movie, either an
// upload under /uploads/posters/ or a TMDB image path.
func (m Movie) HasPoster() bool {
	return m.PosterPath != nil && *m.PosterPath != ""
}

// CreateMovie is the payload of POST /movies.
type CreateMovie struct {
	Title string `json:"title" validate:"required,notblank,max=500"`

	MovieDetails
}

// UpdateMovie is the payload of PUT /movies/{id}. Only non-nil fields are written.
type UpdateMovie struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`

	MovieDetails
}
