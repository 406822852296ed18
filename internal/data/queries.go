package data

import "sort"

// The report operations. Each is a pure function over an already-loaded
// collection: nothing here mutates a record, and repeated calls against
// the same slice always return the same answer.

// Count returns the number of loaded records.
func Count(movies []*Movie) int {
	return len(movies)
}

// GenreCount is one bar of the genre histogram.
type GenreCount struct {
	Genre Genre `json:"genre"`
	Count int   `json:"count"`
}

// GenreHistogram counts records per genre tag, sorted by count descending
// with ties broken by tag name ascending. Genres with no records are
// omitted.
func GenreHistogram(movies []*Movie) []GenreCount {
	counts := make(map[Genre]int)
	for _, m := range movies {
		counts[m.Genre]++
	}

	histogram := make([]GenreCount, 0, len(counts))
	for genre, count := range counts {
		histogram = append(histogram, GenreCount{Genre: genre, Count: count})
	}

	sort.Slice(histogram, func(i, j int) bool {
		if histogram[i].Count != histogram[j].Count {
			return histogram[i].Count > histogram[j].Count
		}
		return histogram[i].Genre.String() < histogram[j].Genre.String()
	})

	return histogram
}

// HighestRelevantScore finds the records holding the highest relevant
// audience score. Records without a relevant score are invisible to this
// query. ok is false when no record qualifies.
func HighestRelevantScore(movies []*Movie) (int, []*Movie, bool) {
	best := -1
	var winners []*Movie

	for _, m := range movies {
		score, ok := m.RelevantScore()
		if !ok {
			continue
		}

		switch {
		case score > best:
			best = score
			winners = []*Movie{m}
		case score == best:
			winners = append(winners, m)
		}
	}

	if winners == nil {
		return 0, nil, false
	}
	return best, winners, true
}

// MostActiveDirectors counts records per director: a record listing N
// directors credits each of the N once. All directors tied at the maximum
// are returned, sorted by name so the answer is deterministic. ok is false
// when no record lists any director.
func MostActiveDirectors(movies []*Movie) (int, []*Person, bool) {
	counts := make(map[*Person]int)
	for _, m := range movies {
		for _, d := range m.Directors {
			counts[d]++
		}
	}

	if len(counts) == 0 {
		return 0, nil, false
	}

	max := 0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}

	var busiest []*Person
	for person, count := range counts {
		if count == max {
			busiest = append(busiest, person)
		}
	}

	sort.Slice(busiest, func(i, j int) bool {
		return busiest[i].FullName < busiest[j].FullName
	})

	return max, busiest, true
}

// RuntimeExtremes returns every record at the minimum runtime and every
// record at the maximum runtime, in load order. ok is false on an empty
// collection.
func RuntimeExtremes(movies []*Movie) (shortest, longest []*Movie, ok bool) {
	if len(movies) == 0 {
		return nil, nil, false
	}

	min, max := movies[0].Runtime, movies[0].Runtime
	for _, m := range movies[1:] {
		if m.Runtime < min {
			min = m.Runtime
		}
		if m.Runtime > max {
			max = m.Runtime
		}
	}

	for _, m := range movies {
		if m.Runtime == min {
			shortest = append(shortest, m)
		}
		if m.Runtime == max {
			longest = append(longest, m)
		}
	}

	return shortest, longest, true
}

// ScaryHorrors filters the collection down to horror records rated
// strictly above PG.
func ScaryHorrors(movies []*Movie) []*Movie {
	var scary []*Movie
	for _, m := range movies {
		if m.Genre == Horror && m.IsScary() {
			scary = append(scary, m)
		}
	}
	return scary
}

// ScoreHistogram buckets records by audience score, one bucket per value
// from 0 through 100 inclusive. Records with an absent or out-of-range
// score contribute to no bucket at all.
func ScoreHistogram(movies []*Movie) [101]int {
	var buckets [101]int
	for _, m := range movies {
		if m.Score == nil {
			continue
		}
		if *m.Score < 0 || *m.Score > 100 {
			continue
		}
		buckets[*m.Score]++
	}
	return buckets
}

// ExportCandidates selects every record without a relevant score (absent
// score, absent vote count, or fewer than 100 votes), sorted by title
// ascending. An empty result means "nothing to export" and callers are
// expected to report that rather than write an empty file.
func ExportCandidates(movies []*Movie) []*Movie {
	var candidates []*Movie
	for _, m := range movies {
		if _, ok := m.RelevantScore(); !ok {
			candidates = append(candidates, m)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Title < candidates[j].Title
	})

	return candidates
}
