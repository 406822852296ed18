package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/data"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/dataset"
	"github.com/JPVercaut/Syntra-evaluatie-14jan2026/internal/jsonlog"
)

// runExport performs menu option 9 without the menu: load the dataset,
// select the films without a relevant score, and write them to the export
// file sorted by title.
func runExport(cmd *cobra.Command, args []string) error {
	logger := jsonlog.New(os.Stderr, jsonlog.LevelInfo)

	ds, _, err := loadDataset(logger)
	if err != nil {
		logger.PrintError(err, map[string]string{"file": datasetFile})
		return err
	}

	out := cmd.OutOrStdout()

	candidates := data.ExportCandidates(ds.Movies)
	if len(candidates) == 0 {
		fmt.Fprintln(out, "all movies have a relevant score; nothing to export")
		return nil
	}

	if err := dataset.Export(exportFile, candidates); err != nil {
		return err
	}

	fmt.Fprintf(out, "exported %d movies to %s\n", len(candidates), exportFile)
	return nil
}
