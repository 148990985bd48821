// Command dataset cleans the raw student table: rows missing the general
// average or the attendance are dropped and the rest is written to the
// processed data directory.
//
//	dataset --input-path data/raw/dataset.csv --output-path data/processed/dataset.csv
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/command"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/config"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/dataset"
)

func newCommand(cfg *config.Config) *cobra.Command {
	var run dataset.Config
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Clean the raw dataset and save it to the processed data directory",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := dataset.Clean(run)
			return err
		},
	}
	command.PathFlag(cmd.Flags(), &run.InputPath, "input-path", cfg.Paths.RawDataset(), "raw CSV table")
	command.PathFlag(cmd.Flags(), &run.OutputPath, "output-path", cfg.Paths.ProcessedDataset(), "cleaned CSV table")
	return cmd
}

func main() {
	os.Exit(command.Main(newCommand, os.Args[1:]))
}
