// Package dataset is the flat-file collaborator around the core model: it
// pulls raw CSV rows through the record factory on the way in and writes
// the export shape on the way out. All business rules live in the data
// package; this one only moves rows.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/jsonlog"
)

// Dataset holds the loaded collection together with the load tallies. The
// Movies slice is built once and treated as read-only afterwards.
type Dataset struct {
	Movies  []*data.Movie
	Loaded  int
	Skipped int
}

// Stats returns the load tallies in a shape suitable for expvar
// publishing.
func (ds *Dataset) Stats() map[string]int {
	return map[string]int{
		"loaded":  ds.Loaded,
		"skipped": ds.Skipped,
	}
}

// Load reads the CSV file at path through the factory. A missing or
// unreadable file is a fatal condition returned as an error; anything
// wrong with an individual row is counted, logged and skipped, and must
// never abort the batch.
func Load(path string, factory *data.Factory, logger *jsonlog.Logger) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	return Read(file, factory, logger)
}

// Read consumes CSV rows from r. It is split out from Load so the
// row-level behaviour can be exercised without touching the filesystem.
func Read(r io.Reader, factory *data.Factory, logger *jsonlog.Logger) (*Dataset, error) {
	reader := csv.NewReader(r)

	// Rows with a deviating field count become row errors below instead of
	// stopping the reader.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	ds := &Dataset{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			ds.Skipped++
			logger.PrintError(err, map[string]string{"line": strconv.Itoa(line)})
			continue
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}

		movie, err := factory.Create(row)
		if err != nil {
			ds.Skipped++
			logger.PrintError(err, map[string]string{
				"line":  strconv.Itoa(line),
				"title": strings.TrimSpace(row["movie_title"]),
			})
			continue
		}

		ds.Movies = append(ds.Movies, movie)
		ds.Loaded++
	}

	return ds, nil
}
