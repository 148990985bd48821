// Command plots renders the descriptive figures of the processed dataset.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/command"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/config"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/plots"
)

func newCommand(cfg *config.Config) *cobra.Command {
	var run plots.Config
	cmd := &cobra.Command{
		Use:   "plots",
		Short: "Generate descriptive figures of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := plots.Generate(run)
			return err
		},
	}
	command.PathFlag(cmd.Flags(), &run.InputPath, "input-path", cfg.Paths.ProcessedDataset(), "cleaned CSV table")
	command.PathFlag(cmd.Flags(), &run.OutputDir, "output-dir", cfg.Paths.Figures, "figures directory")
	return cmd
}

func main() {
	os.Exit(command.Main(newCommand, os.Args[1:]))
}
