package models

// TMDBPageSize is the number of results TMDB returns on a full page.
const TMDBPageSize = 20

// TMDBSearchQuery describes a movie or TV search.
type TMDBSearchQuery struct {
	Query        string
	Year         *int64
	Language     string
	IncludeAdult bool
	MaxPages     int
}

// TMDBGenre is a named TMDB genre.
type TMDBGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TMDBCompany is a production company or TV network.
type TMDBCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TMDBCountry is a production country.
type TMDBCountry struct {
	ISO  string `json:"iso_3166_1"`
	Name string `json:"name"`
}

// TMDBMovieResult is one hit of a movie search.
type TMDBMovieResult struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	ReleaseDate   string  `json:"release_date"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	VoteAverage   float64 `json:"vote_average"`
	Adult         bool    `json:"adult"`
}

// TMDBMovieDetails is the /movie/{id} document.
type TMDBMovieDetails struct {
	ID                  int64         `json:"id"`
	IMDbID              *string       `json:"imdb_id"`
	Title               string        `json:"title"`
	OriginalTitle       string        `json:"original_title"`
	Overview            string        `json:"overview"`
	Tagline             string        `json:"tagline"`
	Runtime             *int64        `json:"runtime"`
	ReleaseDate         string        `json:"release_date"`
	PosterPath          *string       `json:"poster_path"`
	BackdropPath        *string       `json:"backdrop_path"`
	Budget              int64         `json:"budget"`
	Revenue             int64         `json:"revenue"`
	VoteAverage         float64       `json:"vote_average"`
	Genres              []TMDBGenre   `json:"genres"`
	ProductionCompanies []TMDBCompany `json:"production_companies"`
	ProductionCountries []TMDBCountry `json:"production_countries"`
}

// TMDBCastMember is one entry of a cast list.
type TMDBCastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// TMDBCrewMember is one entry of a crew list.
type TMDBCrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// TMDBCredits is the /movie/{id}/credits and /tv/{id}/credits document.
type TMDBCredits struct {
	ID   int64            `json:"id"`
	Cast []TMDBCastMember `json:"cast"`
	Crew []TMDBCrewMember `json:"crew"`
}

// TMDBTVResult is one hit of a TV search.
type TMDBTVResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
}

// TMDBTVDetails is the /tv/{id} document.
type TMDBTVDetails struct {
	ID                  int64         `json:"id"`
	Name                string        `json:"name"`
	OriginalName        string        `json:"original_name"`
	Overview            string        `json:"overview"`
	Tagline             string        `json:"tagline"`
	FirstAirDate        string        `json:"first_air_date"`
	EpisodeRunTime      []int64       `json:"episode_run_time"`
	NumberOfEpisodes    *int64        `json:"number_of_episodes"`
	NumberOfSeasons     *int64        `json:"number_of_seasons"`
	Status              string        `json:"status"`
	Networks            []TMDBCompany `json:"networks"`
	Genres              []TMDBGenre   `json:"genres"`
	ProductionCompanies []TMDBCompany `json:"production_companies"`
	PosterPath          *string       `json:"poster_path"`
	BackdropPath        *string       `json:"backdrop_path"`
	VoteAverage         float64       `json:"vote_average"`
}

// TMDBCollectionResult is one hit of a collection search.
type TMDBCollectionResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
}

// TMDBCollectionDetails is the /collection/{id} document.
type TMDBCollectionDetails struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Overview     string            `json:"overview"`
	PosterPath   *string           `json:"poster_path"`
	BackdropPath *string           `json:"backdrop_path"`
	Parts        []TMDBMovieResult `json:"parts"`
}
