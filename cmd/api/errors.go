package main

import (
	"fmt"
	"net/http"
)

// The logError() method is a generic helper for logging an error message,
// along with the request method and URL as properties in the log entry.
func (app *application) logError(r *http.Request, err error) {
	app.logger.PrintError(err, map[string]string{
		"request_method": r.Method,
		"request_url":    r.URL.String(),
	})
}

// The errorResponse() method is a generic helper for sending JSON-formatted
// error messages to the client with a given status code. Note that we use
// the interface{} type for the message parameter rather than a string, to
// give us more flexibility over the values we can include in the response.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := envelope{"error": message}

	// If writeJSON() itself fails, fall back to sending the client an
	// empty response with a 500 status code.
	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// The serverErrorResponse() method is used when our application encounters
// an unexpected problem at runtime. It logs the detailed error message and
// sends a 500 Internal Server Error with a generic message to the client.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

// The notFoundResponse() method sends a 404 Not Found status code and JSON
// response to the client.
func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

// The methodNotAllowedResponse() method sends a 405 Method Not Allowed
// status code and JSON response to the client.
func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

// The rateLimitExceededResponse() method sends a 429 Too Many Requests
// status code and JSON response to the client.
func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	app.errorResponse(w, r, http.StatusTooManyRequests, message)
}
