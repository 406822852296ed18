package data

import (
	"strconv"
	"strings"
	"time"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/validator"
)

// The dataset's column names. RecordFactory consumes exactly these eleven
// columns; anything else in a row is ignored.
const (
	colRTLink        = "rotten_tomatoes_link"
	colTitle         = "movie_title"
	colRating        = "content_rating"
	colGenre         = "genre"
	colDirectors     = "directors"
	colReleaseDate   = "original_release_date"
	colStreamingDate = "streaming_release_date"
	colRuntime       = "runtime"
	colCompany       = "production_company"
	colScore         = "audience_rating"
	colVotes         = "audience_count"
)

// Columns lists the dataset's column names in file order. The exporter
// writes its header from this slice so import and export shapes can't
// drift apart.
var Columns = []string{
	colRTLink,
	colTitle,
	colRating,
	colGenre,
	colDirectors,
	colReleaseDate,
	colStreamingDate,
	colRuntime,
	colCompany,
	colScore,
	colVotes,
}

// Factory turns one raw row (column name to raw text) into a Movie,
// resolving rating and director references through the two registries. A
// single Factory is shared across every row of a load.
type Factory struct {
	Ratings *RatingRegistry
	Persons *PersonRegistry
}

func NewFactory(ratings *RatingRegistry, persons *PersonRegistry) *Factory {
	return &Factory{
		Ratings: ratings,
		Persons: persons,
	}
}

// Create builds a Movie from a raw row. Only four conditions fail the row:
// a missing required field, an unknown rating code, an unknown genre, and
// the final record validation. Every optional field degrades to "absent"
// on malformed input instead of erroring, so one sloppy cell never costs a
// whole record.
func (f *Factory) Create(row map[string]string) (*Movie, error) {
	rtLink := strings.TrimSpace(row[colRTLink])
	title := strings.TrimSpace(row[colTitle])
	ratingCode := strings.TrimSpace(row[colRating])
	genreText := strings.TrimSpace(row[colGenre])

	for _, required := range []struct {
		name  string
		value string
	}{
		{colRTLink, rtLink},
		{colTitle, title},
		{colRating, ratingCode},
		{colGenre, genreText},
	} {
		if required.value == "" {
			return nil, MissingFieldError{Field: required.name}
		}
	}

	rating, err := f.Ratings.Get(ratingCode)
	if err != nil {
		return nil, err
	}

	directors, err := f.parseDirectors(row[colDirectors])
	if err != nil {
		return nil, err
	}

	genre, err := ParseGenre(genreText)
	if err != nil {
		return nil, err
	}

	// A negative runtime is coerced to 0 rather than rejected, matching
	// the fail-soft treatment of the other optional fields.
	runtime := Runtime(0)
	if n := parseOptionalInt(row[colRuntime]); n != nil && *n > 0 {
		runtime = Runtime(*n)
	}

	movie := &Movie{
		RTLink:        rtLink,
		Title:         title,
		Genre:         genre,
		Rating:        rating,
		Directors:     directors,
		ReleaseDate:   parseOptionalDate(row[colReleaseDate]),
		StreamingDate: parseOptionalDate(row[colStreamingDate]),
		Runtime:       runtime,
		Company:       strings.TrimSpace(row[colCompany]),
		Score:         parseOptionalInt(row[colScore]),
		Votes:         parseOptionalInt(row[colVotes]),
	}

	// The checks above should make this unreachable, but the record's own
	// validation stays the authoritative gate.
	v := validator.New()
	if ValidateMovie(v, movie); !v.Valid() {
		return nil, InvalidRecordError{Fields: v.Errors}
	}

	return movie, nil
}

// parseDirectors splits the raw comma-separated director text, trims each
// part, drops empty parts, and interns every surviving name, preserving
// split order. Empty input yields an empty slice, not an error.
func (f *Factory) parseDirectors(raw string) ([]*Person, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, nil
	}

	var directors []*Person
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		person, err := f.Persons.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		directors = append(directors, person)
	}

	return directors, nil
}

// parseOptionalInt returns nil for absent, empty or malformed input. The
// distinction between nil and 0 matters: a missing audience score must not
// look like a score of zero.
func parseOptionalInt(value string) *int {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return nil
	}
	return &n
}

// parseOptionalDate parses an ISO YYYY-MM-DD date, returning nil for
// absent, empty or malformed input.
func parseOptionalDate(value string) *time.Time {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return nil
	}

	t, err := time.Parse("2006-01-02", cleaned)
	if err != nil {
		return nil
	}
	return &t
}
