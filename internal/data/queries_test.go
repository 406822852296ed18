package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collection builds a set of records through the factory so the queries
// are exercised against the same shapes a real load produces. Each entry
// is title, genre, rating, directors, runtime, score, votes; empty strings
// leave the optional columns absent.
func collection(t *testing.T, f *Factory, rows [][7]string) []*Movie {
	t.Helper()

	var movies []*Movie
	for i, r := range rows {
		row := map[string]string{
			"rotten_tomatoes_link": "m/movie_" + string(rune('a'+i)),
			"movie_title":          r[0],
			"genre":                r[1],
			"content_rating":       r[2],
			"directors":            r[3],
			"runtime":              r[4],
			"audience_rating":      r[5],
			"audience_count":       r[6],
		}

		movie, err := f.Create(row)
		require.NoError(t, err)
		movies = append(movies, movie)
	}

	return movies
}

func TestCount(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"A", "Drama", "PG", "", "90", "", ""},
		{"B", "Comedy", "PG", "", "95", "", ""},
	})

	assert.Equal(t, 2, Count(movies))
	assert.Equal(t, 0, Count(nil))
}

func TestGenreHistogram(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"C1", "Comedy", "PG", "", "90", "", ""},
		{"C2", "Comedy", "PG", "", "90", "", ""},
		{"D1", "Drama", "PG", "", "90", "", ""},
		{"D2", "Drama", "PG", "", "90", "", ""},
		{"D3", "Drama", "PG", "", "90", "", ""},
		{"W1", "Western", "PG", "", "90", "", ""},
	})

	want := []GenreCount{
		{Genre: Drama, Count: 3},
		{Genre: Comedy, Count: 2},
		{Genre: Western, Count: 1},
	}
	assert.Equal(t, want, GenreHistogram(movies))
}

func TestGenreHistogramTiesBreakOnName(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"W1", "Western", "PG", "", "90", "", ""},
		{"C1", "Comedy", "PG", "", "90", "", ""},
		{"H1", "Horror", "PG", "", "90", "", ""},
	})

	want := []GenreCount{
		{Genre: Comedy, Count: 1},
		{Genre: Horror, Count: 1},
		{Genre: Western, Count: 1},
	}
	assert.Equal(t, want, GenreHistogram(movies))
}

func TestHighestRelevantScore(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Irrelevantly Perfect", "Drama", "PG", "", "90", "100", "50"},
		{"Winner One", "Drama", "PG", "", "90", "92", "500"},
		{"Runner Up", "Comedy", "PG", "", "90", "80", "500"},
		{"Winner Two", "Western", "PG", "", "90", "92", "100"},
		{"No Score", "Drama", "PG", "", "90", "", ""},
	})

	score, winners, ok := HighestRelevantScore(movies)
	require.True(t, ok)
	assert.Equal(t, 92, score)

	// The record with score 100 has too few votes to be visible at all.
	require.Len(t, winners, 2)
	assert.Equal(t, "Winner One", winners[0].Title)
	assert.Equal(t, "Winner Two", winners[1].Title)
}

func TestHighestRelevantScoreNoneFound(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Few Votes", "Drama", "PG", "", "90", "95", "99"},
		{"No Score", "Comedy", "PG", "", "90", "", "5000"},
	})

	_, winners, ok := HighestRelevantScore(movies)
	assert.False(t, ok)
	assert.Nil(t, winners)
}

func TestMostActiveDirectors(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"A", "Drama", "PG", "Alice Alpha, Bob Beta", "90", "", ""},
		{"B", "Comedy", "PG", "alice alpha", "90", "", ""},
		{"C", "Western", "PG", "Bob Beta", "90", "", ""},
		{"D", "Drama", "PG", "Carol Gamma", "90", "", ""},
	})

	count, directors, ok := MostActiveDirectors(movies)
	require.True(t, ok)
	assert.Equal(t, 2, count)

	// Ties are sorted by name for a deterministic answer.
	require.Len(t, directors, 2)
	assert.Equal(t, "Alice Alpha", directors[0].FullName)
	assert.Equal(t, "Bob Beta", directors[1].FullName)
}

func TestMostActiveDirectorsNoneFound(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"A", "Drama", "PG", "", "90", "", ""},
	})

	_, _, ok := MostActiveDirectors(movies)
	assert.False(t, ok)
}

func TestRuntimeExtremes(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Short One", "Drama", "PG", "", "25", "", ""},
		{"Medium", "Comedy", "PG", "", "90", "", ""},
		{"Short Two", "Western", "PG", "", "25", "", ""},
		{"Long", "Drama", "PG", "", "210", "", ""},
	})

	shortest, longest, ok := RuntimeExtremes(movies)
	require.True(t, ok)

	require.Len(t, shortest, 2)
	assert.Equal(t, Runtime(25), shortest[0].Runtime)
	assert.Equal(t, "Short One", shortest[0].Title)
	assert.Equal(t, "Short Two", shortest[1].Title)

	require.Len(t, longest, 1)
	assert.Equal(t, "Long", longest[0].Title)
	assert.Equal(t, Runtime(210), longest[0].Runtime)
}

func TestRuntimeExtremesEmptyCollection(t *testing.T) {
	_, _, ok := RuntimeExtremes(nil)
	assert.False(t, ok)
}

func TestScaryHorrors(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Tame Horror", "Horror", "PG", "", "90", "", ""},
		{"Scary Horror", "Horror", "R", "", "90", "", ""},
		{"Scarier Horror", "Horror", "NC17", "", "90", "", ""},
		{"R-Rated Drama", "Drama", "R", "", "90", "", ""},
	})

	scary := ScaryHorrors(movies)
	require.Len(t, scary, 2)
	assert.Equal(t, "Scary Horror", scary[0].Title)
	assert.Equal(t, "Scarier Horror", scary[1].Title)
}

func TestScoreHistogram(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Zero", "Drama", "PG", "", "90", "0", "10"},
		{"Perfect", "Comedy", "PG", "", "90", "100", "10"},
		{"Absent", "Drama", "PG", "", "90", "", ""},
		{"Out Of Range", "Drama", "PG", "", "90", "150", "10"},
	})

	histogram := ScoreHistogram(movies)

	assert.Equal(t, 1, histogram[0])
	assert.Equal(t, 1, histogram[100])

	// The absent and out-of-range scores land in no bucket at all.
	total := 0
	for _, count := range histogram {
		total += count
	}
	assert.Equal(t, 2, total)
}

func TestExportCandidates(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Zulu", "Drama", "PG", "", "90", "", ""},
		{"Relevant", "Comedy", "PG", "", "90", "85", "150"},
		{"Alpha", "Western", "PG", "", "90", "85", "50"},
		{"Mike", "Drama", "PG", "", "90", "85", ""},
	})

	candidates := ExportCandidates(movies)

	// Every record with a relevant score is excluded, and the rest come
	// back sorted by title ascending.
	require.Len(t, candidates, 3)
	assert.Equal(t, "Alpha", candidates[0].Title)
	assert.Equal(t, "Mike", candidates[1].Title)
	assert.Equal(t, "Zulu", candidates[2].Title)
}

func TestExportCandidatesNoneLeft(t *testing.T) {
	f := newTestFactory()
	movies := collection(t, f, [][7]string{
		{"Relevant", "Comedy", "PG", "", "90", "85", "150"},
	})

	candidates := ExportCandidates(movies)

	// An empty candidate set comes back with length zero so the caller
	// can report "nothing to export" instead of writing an empty file.
	assert.Empty(t, candidates)
}
