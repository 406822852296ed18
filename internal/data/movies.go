package data

import (
	"fmt"
	"strconv"
	"time"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/validator"
)

// Genre is the closed classification of a movie record. The set of tags is
// fixed: new genres don't appear at runtime, so code that switches over a
// Genre can be exhaustive.
type Genre int

const (
	ActionAdventure Genre = iota
	Comedy
	Drama
	Horror
	Romance
	ScienceFictionFantasy
	Western
)

// genreNames holds the canonical tag names, indexed by Genre. These are
// the names written to the export file and rendered in reports.
var genreNames = [...]string{
	ActionAdventure:       "ActionAdventure",
	Comedy:                "Comedy",
	Drama:                 "Drama",
	Horror:                "Horror",
	Romance:               "Romance",
	ScienceFictionFantasy: "ScienceFictionFantasy",
	Western:               "Western",
}

// genreTags maps the dataset's genre column (trimmed, uppercased) to the
// corresponding tag. Matching is exact: anything else is an unknown genre.
var genreTags = map[string]Genre{
	"ACTION & ADVENTURE":        ActionAdventure,
	"COMEDY":                    Comedy,
	"DRAMA":                     Drama,
	"HORROR":                    Horror,
	"ROMANCE":                   Romance,
	"SCIENCE FICTION & FANTASY": ScienceFictionFantasy,
	"WESTERN":                   Western,
}

func (g Genre) String() string {
	if g < 0 || int(g) >= len(genreNames) {
		return fmt.Sprintf("Genre(%d)", int(g))
	}
	return genreNames[g]
}

// MarshalJSON renders the genre as its canonical name rather than its
// numeric tag value.
func (g Genre) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(g.String())), nil
}

// ParseGenre maps raw genre text onto a tag. The text is trimmed and
// uppercased before the exact-match lookup; no match returns an
// UnknownGenreError carrying the raw input.
func ParseGenre(text string) (Genre, error) {
	genre, ok := genreTags[normalizeRatingCode(text)]
	if !ok {
		return 0, UnknownGenreError{Text: text}
	}
	return genre, nil
}

// Thresholds for the derived predicates below.
const (
	relevantVoteFloor = 100 // votes needed before a score means anything
	classicMinAge     = 20  // years
	classicScoreFloor = 80
	shortRuntimeLimit = 30 // minutes
	slapstickCeiling  = 40
	cosyMinRuntime    = 70
	cosyMaxRuntime    = 100
)

const urlPrefix = "https://www.rottentomatoes.com/"

// Movie is one record of the loaded dataset. Records are built exclusively
// by a Factory and never mutated afterwards. Rating and Directors are
// shared references into the registries, not owned copies. Score and Votes
// are pointers because an absent value must stay distinguishable from a
// real zero.
type Movie struct {
	RTLink        string     `json:"rt_link"`
	Title         string     `json:"title"`
	Genre         Genre      `json:"genre"`
	Rating        *Rating    `json:"rating"`
	Directors     []*Person  `json:"directors,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	StreamingDate *time.Time `json:"streaming_date,omitempty"`
	Runtime       Runtime    `json:"runtime"`
	Company       string     `json:"company,omitempty"`
	Score         *int       `json:"score,omitempty"`
	Votes         *int       `json:"votes,omitempty"`
}

func (m *Movie) String() string {
	return fmt.Sprintf("%s (%s, %d min)", m.Title, m.Genre, m.Runtime)
}

// URL returns the full Rotten Tomatoes URL for the record.
func (m *Movie) URL() string {
	return urlPrefix + m.RTLink
}

// RelevantScore returns the audience score and whether it is statistically
// meaningful: a score counts only when it is present and backed by at
// least 100 votes. When ok is false the returned score is always 0 and
// must be treated as absent, never as a real zero score.
func (m *Movie) RelevantScore() (int, bool) {
	if m.Score == nil || m.Votes == nil {
		return 0, false
	}
	if *m.Votes < relevantVoteFloor {
		return 0, false
	}
	return *m.Score, true
}

// IsClassic reports whether the record is a classic: released at least 20
// years ago with a relevant score of 80 or higher.
func (m *Movie) IsClassic() bool {
	if m.ReleaseDate == nil {
		return false
	}
	if time.Now().Year()-m.ReleaseDate.Year() < classicMinAge {
		return false
	}
	score, ok := m.RelevantScore()
	return ok && score >= classicScoreFloor
}

// IsShort reports whether the record runs under 30 minutes.
func (m *Movie) IsShort() bool {
	return m.Runtime < shortRuntimeLimit
}

// IsSlapstick reports whether a comedy has a relevant score under 40. The
// predicate only applies to the Comedy tag; every other genre is never
// slapstick.
func (m *Movie) IsSlapstick() bool {
	if m.Genre != Comedy {
		return false
	}
	score, ok := m.RelevantScore()
	return ok && score < slapstickCeiling
}

// IsScary reports whether a horror film carries a rating strictly above PG
// in the fixed rating order. The predicate only applies to the Horror tag;
// every other genre is never scary.
func (m *Movie) IsScary() bool {
	if m.Genre != Horror {
		return false
	}
	return m.Rating.rank > rankPG
}

// IsCosy reports whether a romance runs a comfortable 70 to 100 minutes.
// The predicate only applies to the Romance tag.
func (m *Movie) IsCosy() bool {
	if m.Genre != Romance {
		return false
	}
	return m.Runtime >= cosyMinRuntime && m.Runtime <= cosyMaxRuntime
}

// ValidateMovie runs the construction-time invariants: non-empty link and
// title, a resolved rating, and a non-negative runtime.
func ValidateMovie(v *validator.Validator, m *Movie) {
	v.Check(m.RTLink != "", "rotten_tomatoes_link", "must be provided")
	v.Check(m.Title != "", "movie_title", "must be provided")
	v.Check(m.Rating != nil, "content_rating", "must be provided")
	v.Check(m.Runtime >= 0, "runtime", "must not be negative")
}
