package store

import (
	"time"

	"github.com/MKhiriev/my-movies/models"
)

// field binds a column to the struct field holding its value. ptr is the
// address of the field, so the same list serves as scan destinations and as
// the source of INSERT and UPDATE arguments.
type field struct {
	column string
	ptr    any
}

// value returns the argument bound for the column. Optional attributes are
// passed as typed pointers; database/sql writes a nil pointer as NULL.
func (f field) value() any {
	switch p := f.ptr.(type) {
	case **string:
		return *p
	case **int64:
		return *p
	case **float64:
		return *p
	case **bool:
		return *p
	case **time.Time:
		return *p
	case *string:
		return *p
	case *int64:
		return *p
	case *time.Time:
		return *p
	default:
		return nil
	}
}

// isSet reports whether an optional attribute carries a value. Required
// (non-pointer) attributes are always set.
func (f field) isSet() bool {
	switch p := f.ptr.(type) {
	case **string:
		return *p != nil
	case **int64:
		return *p != nil
	case **float64:
		return *p != nil
	case **bool:
		return *p != nil
	case **time.Time:
		return *p != nil
	default:
		return true
	}
}

func columns(fields []field) []string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.column
	}
	return cols
}

func values(fields []field) []any {
	vals := make([]any, len(fields))
	for i, f := range fields {
		vals[i] = f.value()
	}
	return vals
}

func pointers(fields []field) []any {
	ptrs := make([]any, len(fields))
	for i, f := range fields {
		ptrs[i] = f.ptr
	}
	return ptrs
}

// setMap returns column → value for the attributes present in a patch.
func setMap(fields []field) map[string]any {
	set := make(map[string]any)
	for _, f := range fields {
		if f.isSet() {
			set[f.column] = f.value()
		}
	}
	return set
}

func concat(groups ...[]field) []field {
	var n int
	for _, g := range groups {
		n += len(g)
	}

	out := make([]field, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ── attribute groups ─────────────────────────────────────────────────────────

func identifierFields(v *models.Identifiers) []field {
	return []field{
		{"barcode", &v.Barcode},
		{"tmdb_id", &v.TMDBID},
		{"imdb_id", &v.IMDbID},
		{"original_title", &v.OriginalTitle},
		{"sort_title", &v.SortTitle},
		{"personal_title", &v.PersonalTitle},
	}
}

func productionFields(v *models.Production) []field {
	return []field{
		{"description", &v.Description},
		{"tagline", &v.Tagline},
		{"production_year", &v.ProductionYear},
		{"release_date", &v.ReleaseDate},
		{"running_time", &v.RunningTime},
		{"actors", &v.Actors},
		{"production_companies", &v.ProductionCompanies},
		{"production_countries", &v.ProductionCountries},
		{"studios", &v.Studios},
		{"rating_tmdb", &v.RatingTMDB},
		{"personal_rating", &v.PersonalRating},
		{"genres", &v.Genres},
		{"categories", &v.Categories},
		{"tags", &v.Tags},
		{"watched", &v.Watched},
		{"poster_path", &v.PosterPath},
		{"backdrop_path", &v.BackdropPath},
	}
}

func mediaInfoFields(v *models.MediaInfo) []field {
	return []field{
		{"disc_type", &v.DiscType},
		{"region_codes", &v.RegionCodes},
		{"video_standard", &v.VideoStandard},
		{"aspect_ratio", &v.AspectRatio},
		{"audio_tracks", &v.AudioTracks},
		{"subtitles", &v.Subtitles},
		{"is_3d", &v.Is3D},
		{"is_4k", &v.Is4K},
	}
}

func ownershipFields(v *models.Ownership) []field {
	return []field{
		{"condition", &v.Condition},
		{"has_slipcover", &v.HasSlipcover},
		{"cover_type", &v.CoverType},
		{"edition", &v.Edition},
		{"purchase_date", &v.PurchaseDate},
		{"purchase_price", &v.PurchasePrice},
		{"purchase_currency", &v.PurchaseCurrency},
		{"purchase_place", &v.PurchasePlace},
		{"value_date", &v.ValueDate},
		{"value_price", &v.ValuePrice},
		{"value_currency", &v.ValueCurrency},
		{"lent_to", &v.LentTo},
		{"lent_due", &v.LentDue},
		{"location", &v.Location},
		{"notes", &v.Notes},
	}
}

func movieDetailFields(v *models.MovieDetails) []field {
	return concat(
		identifierFields(&v.Identifiers),
		productionFields(&v.Production),
		mediaInfoFields(&v.MediaInfo),
		ownershipFields(&v.Ownership),
		[]field{
			{"director", &v.Director},
			{"movie_group", &v.MovieGroup},
			{"budget", &v.Budget},
			{"revenue", &v.Revenue},
		},
	)
}

func seriesDetailFields(v *models.SeriesDetails) []field {
	return concat(
		identifierFields(&v.Identifiers),
		productionFields(&v.Production),
		mediaInfoFields(&v.MediaInfo),
		ownershipFields(&v.Ownership),
		[]field{
			{"first_aired", &v.FirstAired},
			{"air_time", &v.AirTime},
			{"network", &v.Network},
			{"episode_count", &v.EpisodeCount},
			{"status", &v.Status},
			{"series_group", &v.SeriesGroup},
		},
	)
}

func collectionDetailFields(v *models.CollectionDetails) []field {
	return concat(
		[]field{
			{"barcode", &v.Barcode},
			{"tmdb_id", &v.TMDBID},
			{"original_title", &v.OriginalTitle},
			{"sort_title", &v.SortTitle},
			{"description", &v.Description},
			{"poster_path", &v.PosterPath},
		},
		mediaInfoFields(&v.MediaInfo),
		ownershipFields(&v.Ownership),
	)
}

// rowFields lays out a full catalog row: key, owner, title, details, timestamps.
func rowFields(id, userID, title *string, details []field, createdAt, updatedAt *time.Time) []field {
	return concat(
		[]field{{"id", id}, {"user_id", userID}, {"title", title}},
		details,
		[]field{{"created_at", createdAt}, {"updated_at", updatedAt}},
	)
}
