package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
)

// Export writes the given records to a CSV file at path using the same
// eleven columns as the input shape. The caller decides which records to
// export (typically data.ExportCandidates) and is expected not to call
// Export at all when there is nothing to write.
func Export(path string, movies []*data.Movie) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := Write(file, movies); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

// Write renders the export rows to w. Split out from Export for the same
// reason Read is split out from Load.
func Write(w io.Writer, movies []*data.Movie) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(data.Columns); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for _, m := range movies {
		if err := writer.Write(exportRow(m)); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// exportRow re-serializes one record: the genre as its canonical tag name,
// directors rejoined with ", ", dates as ISO strings or empty, the runtime
// always written, and score/votes as empty strings when absent rather than
// the numeral zero.
func exportRow(m *data.Movie) []string {
	names := make([]string, len(m.Directors))
	for i, d := range m.Directors {
		names[i] = d.FullName
	}

	return []string{
		m.RTLink,
		m.Title,
		m.Rating.Code,
		m.Genre.String(),
		strings.Join(names, ", "),
		formatDate(m.ReleaseDate),
		formatDate(m.StreamingDate),
		strconv.Itoa(int(m.Runtime)),
		m.Company,
		formatOptionalInt(m.Score),
		formatOptionalInt(m.Votes),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatOptionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
