package main

import (
	"encoding/json"
	"net/http"
)

// Define an envelope type for wrapping JSON responses.
type envelope map[string]interface{}

// writeJSON is a helper for sending responses. It takes the destination
// http.ResponseWriter, the HTTP status code to send, the data to encode to
// JSON, and a header map containing any additional headers to set.
func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	// Encode the data to JSON. Use MarshalIndent rather than Marshal so
	// the output is easy to read in a terminal; the whitespace cost is
	// negligible for responses of this size.
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	// Append a newline to make it nicer to view in terminal applications.
	js = append(js, '\n')

	// Add any additional headers before writing the status code; changing
	// the header map after a call to WriteHeader() has no effect.
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}
