package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/dataset"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/jsonlog"
)

// The menu option numbers. The numbering is part of the operator
// interface, so it gets constants rather than magic literals in the
// dispatch switch.
const (
	optCount = iota + 1
	optGenres
	optPersons
	optHighestScore
	optDirectors
	optRuntimes
	optScaryHorrors
	optScoreList
	optExport
	optQuit
)

func runMenu(cmd *cobra.Command, args []string) error {
	logger := jsonlog.New(os.Stderr, jsonlog.LevelInfo)

	ds, persons, err := loadDataset(logger)
	if err != nil {
		logger.PrintError(err, map[string]string{"file": datasetFile})
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nloaded %d films (%d rows skipped)\n", ds.Loaded, ds.Skipped)

	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		printMenu(out)

		choice, ok := readChoice(scanner, out)
		if !ok {
			// Input is exhausted (EOF); treat it like choosing to stop so
			// piped input terminates cleanly.
			return nil
		}

		switch choice {
		case optCount:
			renderCount(out, ds)
		case optGenres:
			renderGenreHistogram(out, ds)
		case optPersons:
			renderPersonCount(out, persons)
		case optHighestScore:
			renderHighestScore(out, ds)
		case optDirectors:
			renderMostActiveDirectors(out, ds)
		case optRuntimes:
			renderRuntimeExtremes(out, ds)
		case optScaryHorrors:
			renderScaryHorrors(out, ds)
		case optScoreList:
			renderScoreHistogram(out, ds)
		case optExport:
			renderExport(out, ds)
		case optQuit:
			fmt.Fprintln(out, "\n bye!")
			return nil
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "ROTTEN TOMATOES MOVIE DATA ANALYSIS TOOL")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "1) Print the number of films")
	fmt.Fprintln(out, "2) Print films by genre")
	fmt.Fprintln(out, "3) Number of persons")
	fmt.Fprintln(out, "4) Highest score")
	fmt.Fprintln(out, "5) Most active directors")
	fmt.Fprintln(out, "6) Shortest and longest films")
	fmt.Fprintln(out, "7) All scary horror films")
	fmt.Fprintln(out, "8) Score list (0-100) & their numbers")
	fmt.Fprintln(out, "9) Export films without a relevant score")
	fmt.Fprintln(out, "10) Stop")
	fmt.Fprintln(out, strings.Repeat("=", 50))
}

// readChoice keeps asking until a number between 1 and 10 is entered. It
// returns ok=false when the input stream ends.
func readChoice(scanner *bufio.Scanner, out io.Writer) (int, bool) {
	for {
		fmt.Fprint(out, "your choice (1-10): ")

		if !scanner.Scan() {
			return 0, false
		}

		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || choice < optCount || choice > optQuit {
			fmt.Fprintln(out, " please enter a number between 1 and 10")
			continue
		}

		return choice, true
	}
}

func renderCount(out io.Writer, ds *dataset.Dataset) {
	fmt.Fprintf(out, "\n number of films: %d\n", data.Count(ds.Movies))
}

func renderGenreHistogram(out io.Writer, ds *dataset.Dataset) {
	fmt.Fprintln(out)
	for _, gc := range data.GenreHistogram(ds.Movies) {
		fmt.Fprintf(out, "%s : %d\n", gc.Genre, gc.Count)
	}
}

func renderPersonCount(out io.Writer, persons *data.PersonRegistry) {
	fmt.Fprintf(out, "\n number of persons: %d\n", persons.Count())
}

func renderHighestScore(out io.Writer, ds *dataset.Dataset) {
	score, movies, ok := data.HighestRelevantScore(ds.Movies)
	if !ok {
		fmt.Fprintln(out, "\n no movies with a relevant score were found.")
		return
	}

	fmt.Fprintf(out, "\n highest relevant score: %d\n", score)
	fmt.Fprintln(out, " movies with this score:")
	for _, m := range movies {
		fmt.Fprintf(out, "  - %s\n", m.Title)
	}
}

func renderMostActiveDirectors(out io.Writer, ds *dataset.Dataset) {
	count, directors, ok := data.MostActiveDirectors(ds.Movies)
	if !ok {
		fmt.Fprintln(out, "\n no directors found in the dataset.")
		return
	}

	fmt.Fprintf(out, "\n most active director(s) with %d film(s):\n", count)
	for _, d := range directors {
		fmt.Fprintf(out, "  - %s\n", d.FullName)
	}
}

func renderRuntimeExtremes(out io.Writer, ds *dataset.Dataset) {
	shortest, longest, ok := data.RuntimeExtremes(ds.Movies)
	if !ok {
		fmt.Fprintln(out, "\n no movies loaded.")
		return
	}

	fmt.Fprintf(out, "\n films with shortest length: %d minutes\n", shortest[0].Runtime)
	for _, m := range shortest {
		fmt.Fprintf(out, "  - %s\n", m.Title)
	}

	fmt.Fprintf(out, "\n films with longest length: %d minutes\n", longest[0].Runtime)
	for _, m := range longest {
		fmt.Fprintf(out, "  - %s\n", m.Title)
	}
}

func renderScaryHorrors(out io.Writer, ds *dataset.Dataset) {
	scary := data.ScaryHorrors(ds.Movies)
	if len(scary) == 0 {
		fmt.Fprintln(out, "\n no scary horror movies found.")
		return
	}

	fmt.Fprintln(out, "\n scary horror movies:")
	for _, m := range scary {
		fmt.Fprintf(out, "  - %s (Rating: %s)\n", m.Title, m.Rating.Code)
	}
}

func renderScoreHistogram(out io.Writer, ds *dataset.Dataset) {
	histogram := data.ScoreHistogram(ds.Movies)

	fmt.Fprintln(out)
	for score, count := range histogram {
		fmt.Fprintf(out, "%d%%: %d\n", score, count)
	}
}

func renderExport(out io.Writer, ds *dataset.Dataset) {
	candidates := data.ExportCandidates(ds.Movies)
	if len(candidates) == 0 {
		fmt.Fprintln(out, "\n all movies have a relevant score; nothing to export.")
		return
	}

	if err := dataset.Export(exportFile, candidates); err != nil {
		fmt.Fprintf(out, "\n errors while exporting to %s: %v\n", exportFile, err)
		return
	}

	fmt.Fprintf(out, "\n exported %d movies to %s\n", len(candidates), exportFile)
}
