package main

import (
	"net/http"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
)

// Each handler below renders exactly one query operation over the loaded
// collection. The handlers own no business rules: they call the operation
// and envelope its structured result.

// summaryHandler reports the size of the collection and the number of
// distinct persons created while loading it.
func (app *application) summaryHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"movies":  data.Count(app.dataset.Movies),
		"skipped": app.dataset.Skipped,
		"persons": app.persons.Count(),
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// genreHistogramHandler reports the number of records per genre tag,
// most common first.
func (app *application) genreHistogramHandler(w http.ResponseWriter, r *http.Request) {
	histogram := data.GenreHistogram(app.dataset.Movies)

	err := app.writeJSON(w, http.StatusOK, envelope{"genres": histogram}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// topRatedHandler reports the highest relevant audience score and every
// record holding it. When no record has a relevant score, "found" is false
// and the other fields are omitted.
func (app *application) topRatedHandler(w http.ResponseWriter, r *http.Request) {
	score, movies, ok := data.HighestRelevantScore(app.dataset.Movies)

	env := envelope{"found": ok}
	if ok {
		titles := make([]string, len(movies))
		for i, m := range movies {
			titles[i] = m.Title
		}
		env["score"] = score
		env["titles"] = titles
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// mostActiveDirectorsHandler reports the directors credited with the most
// records, ties included.
func (app *application) mostActiveDirectorsHandler(w http.ResponseWriter, r *http.Request) {
	count, directors, ok := data.MostActiveDirectors(app.dataset.Movies)

	env := envelope{"found": ok}
	if ok {
		env["films"] = count
		env["directors"] = directors
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// runtimeExtremesHandler reports every record at the minimum runtime and
// every record at the maximum runtime.
func (app *application) runtimeExtremesHandler(w http.ResponseWriter, r *http.Request) {
	shortest, longest, ok := data.RuntimeExtremes(app.dataset.Movies)

	env := envelope{"found": ok}
	if ok {
		env["shortest"] = envelope{
			"runtime": shortest[0].Runtime,
			"titles":  titlesOf(shortest),
		}
		env["longest"] = envelope{
			"runtime": longest[0].Runtime,
			"titles":  titlesOf(longest),
		}
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// scaryHorrorsHandler reports every horror record rated strictly above PG.
func (app *application) scaryHorrorsHandler(w http.ResponseWriter, r *http.Request) {
	scary := data.ScaryHorrors(app.dataset.Movies)

	results := make([]envelope, len(scary))
	for i, m := range scary {
		results[i] = envelope{
			"title":  m.Title,
			"rating": m.Rating.Code,
		}
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"movies": results}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// scoreHistogramHandler reports how many records carry each audience score
// from 0 through 100. The response array is indexed by score value.
func (app *application) scoreHistogramHandler(w http.ResponseWriter, r *http.Request) {
	histogram := data.ScoreHistogram(app.dataset.Movies)

	err := app.writeJSON(w, http.StatusOK, envelope{"scores": histogram}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// exportCandidatesHandler reports the records without a relevant score,
// sorted by title: the same subset the analyzer's export option writes to
// file. An empty candidate set is reported explicitly rather than as an
// empty list.
func (app *application) exportCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	candidates := data.ExportCandidates(app.dataset.Movies)

	env := envelope{"count": len(candidates)}
	if len(candidates) == 0 {
		env["message"] = "all movies have a relevant score; nothing to export"
	} else {
		env["movies"] = candidates
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func titlesOf(movies []*data.Movie) []string {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	return titles
}
