package main

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	// Initialize a new httprouter router instance.
	router := httprouter.New()

	// Convert our notFoundResponse() and methodNotAllowedResponse()
	// helpers to http.Handlers using the http.HandlerFunc() adapter, and
	// set them as the custom error handlers for 404 and 405 responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Every report endpoint is a plain GET over the immutable collection
	// that was loaded at startup; nothing under /v1 mutates state.
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/summary", app.summaryHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/genres", app.genreHistogramHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/top-rated", app.topRatedHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/most-active-directors", app.mostActiveDirectorsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/runtime-extremes", app.runtimeExtremesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/scary-horrors", app.scaryHorrorsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/score-histogram", app.scoreHistogramHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reports/export-candidates", app.exportCandidatesHandler)

	// Register a GET /debug/vars endpoint pointing to the expvar handler.
	router.Handler(http.MethodGet, "/debug/vars", expvar.Handler())

	// Wrap the router with our middleware, outermost first.
	return app.metrics(app.recoverPanic(app.enableCORS(app.rateLimit(router))))
}
