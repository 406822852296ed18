package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/dataset"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/jsonlog"
)

var (
	datasetFile string
	exportFile  string

	rootCmd = &cobra.Command{
		Use:   "analyzer",
		Short: "Interactive analysis of a Rotten Tomatoes movie dataset",
		Long: "Loads a movie dataset from a CSV file and presents a menu-driven\n" +
			"interface for analyzing the data in various ways.",
		RunE: runMenu,
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the films without a relevant score, without entering the menu",
		RunE:  runExport,
	}
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments; any
	// load or I/O failure surfaces as an error here.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetFile, "file", "reviews.csv", "movie dataset CSV file")
	rootCmd.PersistentFlags().StringVar(&exportFile, "export", "export.csv", "export destination CSV file")

	rootCmd.AddCommand(exportCmd)
}

// loadDataset builds fresh registries and pulls the whole dataset file
// through the record factory. Row-level problems are logged to stderr and
// counted; only an unreadable file is returned as an error.
func loadDataset(logger *jsonlog.Logger) (*dataset.Dataset, *data.PersonRegistry, error) {
	ratings := data.NewRatingRegistry()
	persons := data.NewPersonRegistry()
	factory := data.NewFactory(ratings, persons)

	ds, err := dataset.Load(datasetFile, factory, logger)
	if err != nil {
		return nil, nil, err
	}

	return ds, persons, nil
}
