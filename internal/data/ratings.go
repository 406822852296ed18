package data

import "strings"

// Rating represents one of the six fixed content ratings. Exactly one
// instance exists per code for the lifetime of the registry that owns it,
// so ratings can be compared by pointer as well as by rank. The zero value
// is not usable; ratings are only ever handed out by a RatingRegistry.
type Rating struct {
	Code        string `json:"code"`
	Description string `json:"description"`

	// rank fixes the total order NR < G < PG < PG-13 < R < NC17.
	rank int
}

// The rank constants give every seeded rating its position in the fixed
// order. Codes are unique keys, so ties are impossible.
const (
	rankNR = iota
	rankG
	rankPG
	rankPG13
	rankR
	rankNC17
)

func (r *Rating) String() string {
	return r.Code
}

// Less reports whether r sits below other in the fixed rating order.
func (r *Rating) Less(other *Rating) bool {
	return r.rank < other.rank
}

// Stricter reports whether r sits strictly above other in the fixed rating
// order.
func (r *Rating) Stricter(other *Rating) bool {
	return r.rank > other.rank
}

// RatingRegistry owns the six rating instances and hands out shared
// references to them. Construction of a Rating happens only inside the
// registry, which makes the "already exists" condition structurally
// impossible for callers. The registry is sealed once NewRatingRegistry
// returns, so concurrent readers need no locking.
type RatingRegistry struct {
	ratings map[string]*Rating
}

// NewRatingRegistry returns a registry seeded with the six predefined
// ratings, from least to most restrictive.
func NewRatingRegistry() *RatingRegistry {
	rr := &RatingRegistry{
		ratings: make(map[string]*Rating, 6),
	}

	seed := []struct {
		code        string
		description string
		rank        int
	}{
		{"NR", "Not rated", rankNR},
		{"G", "All ages", rankG},
		{"PG", "Parental guidance advised", rankPG},
		{"PG-13", "Parental guidance strongly advised", rankPG13},
		{"R", "Under 17, parental guidance advised", rankR},
		{"NC17", "For adults only", rankNC17},
	}

	for _, s := range seed {
		// The seed table is static, so a duplicate here is a programming
		// error rather than a runtime condition.
		if err := rr.register(s.code, s.description, s.rank); err != nil {
			panic(err)
		}
	}

	return rr
}

// register stores a new rating under its normalized code. It returns
// ErrDuplicateRating if the code is already present; it exists only to
// seed the registry and is deliberately unexported.
func (rr *RatingRegistry) register(code, description string, rank int) error {
	key := normalizeRatingCode(code)

	if _, exists := rr.ratings[key]; exists {
		return ErrDuplicateRating
	}

	rr.ratings[key] = &Rating{Code: key, Description: description, rank: rank}
	return nil
}

// Get returns the unique Rating for the given code. The code is trimmed
// and uppercased before lookup, so "pg-13", " PG-13 " and "PG-13" all
// resolve to the identical instance. Codes outside the fixed set return an
// UnknownRatingError.
func (rr *RatingRegistry) Get(code string) (*Rating, error) {
	key := normalizeRatingCode(code)

	rating, ok := rr.ratings[key]
	if !ok {
		return nil, UnknownRatingError{Code: key}
	}

	return rating, nil
}

func normalizeRatingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
