package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/dataset"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/jsonlog"
)

const testCSV = `rotten_tomatoes_link,movie_title,content_rating,genre,directors,original_release_date,streaming_release_date,runtime,production_company,audience_rating,audience_count
m/one,Drama One,PG,Drama,Jane Smith,1999-05-01,,120,Acme,92,1500
m/two,Scary Two,R,Horror,Jane Smith,2010-10-31,,95,,70,2000
m/three,Comedy Three,G,Comedy,John Jones,2012-01-01,,88,,70,50
`

// The metrics middleware registers expvar variables, which may only
// happen once per process, so every test shares a single application and
// router.
var (
	buildOnce  sync.Once
	testApp    *application
	testRouter http.Handler
)

func newTestServer(t *testing.T) (*application, http.Handler) {
	t.Helper()

	buildOnce.Do(func() {
		logger := jsonlog.New(io.Discard, jsonlog.LevelInfo)

		persons := data.NewPersonRegistry()
		factory := data.NewFactory(data.NewRatingRegistry(), persons)

		ds, err := dataset.Read(strings.NewReader(testCSV), factory, logger)
		if err != nil {
			t.Fatal(err)
		}

		var cfg config
		cfg.env = "testing"
		cfg.limiter.enabled = false

		testApp = &application{
			config:  cfg,
			logger:  logger,
			dataset: ds,
			persons: persons,
		}
		testRouter = testApp.routes()
	})

	return testApp, testRouter
}

func get(t *testing.T, router http.Handler, path string) (int, envelope) {
	t.Helper()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var body envelope
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	}

	return rr.Code, body
}

func TestHealthcheck(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/healthcheck")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "available", body["status"])
}

func TestSummaryReport(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/reports/summary")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["movies"])
	assert.Equal(t, float64(2), body["persons"])
}

func TestGenreHistogramReport(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/reports/genres")

	assert.Equal(t, http.StatusOK, status)

	genres, ok := body["genres"].([]interface{})
	require.True(t, ok)
	assert.Len(t, genres, 3)
}

func TestTopRatedReport(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/reports/top-rated")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, float64(92), body["score"])
	assert.Equal(t, []interface{}{"Drama One"}, body["titles"])
}

func TestScaryHorrorsReport(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/reports/scary-horrors")

	assert.Equal(t, http.StatusOK, status)

	movies, ok := body["movies"].([]interface{})
	require.True(t, ok)
	require.Len(t, movies, 1)

	movie := movies[0].(map[string]interface{})
	assert.Equal(t, "Scary Two", movie["title"])
	assert.Equal(t, "R", movie["rating"])
}

func TestExportCandidatesReport(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/reports/export-candidates")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	_, router := newTestServer(t)

	status, body := get(t, router, "/v1/reports/nope")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "the requested resource could not be found", body["error"])
}

func TestReportsRejectOtherMethods(t *testing.T) {
	_, router := newTestServer(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/reports/summary", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
