// Command train fits the linear regression of the general average on
// attendance and school attributes and saves the fitted pipeline.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/command"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/config"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/modeling"
)

func newCommand(cfg *config.Config) *cobra.Command {
	var run modeling.Config
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the school performance regression model",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := modeling.Train(run)
			return err
		},
	}
	command.PathFlag(cmd.Flags(), &run.InputPath, "input-path", cfg.Paths.ProcessedDataset(), "cleaned CSV table")
	command.PathFlag(cmd.Flags(), &run.ModelPath, "model-path", cfg.Paths.ModelFile(), "fitted pipeline output")
	return cmd
}

func main() {
	os.Exit(command.Main(newCommand, os.Args[1:]))
}
