// Package command holds the process scaffolding shared by the stage
// binaries: logging setup, configuration loading, flag helpers and the
// mapping from stage errors to log lines and exit codes.
package command

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/config"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
)

// EnvFile is loaded at startup when present.
const EnvFile = ".env"

// Builder creates the stage command once the configuration is known, so
// flag defaults can point into the project layout.
type Builder func(cfg *config.Config) *cobra.Command

// Main sets up logging, loads the configuration, runs the command built by
// build with args and returns the process exit code.
func Main(build Builder, args []string) int {
	log.SetHandler(cli.Default)

	cfg, err := config.Load(EnvFile)
	if err != nil {
		log.WithError(err).Error("could not load configuration")
		return 1
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err != nil {
		log.Warnf("ignoring %s=%q: %v", config.EnvLogLevel, cfg.LogLevel, err)
	} else {
		log.SetLevel(level)
	}

	cmd := build(cfg)
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	cmd.PersistentPreRun = func(c *cobra.Command, _ []string) {
		// Flag errors still print usage; stage failures do not.
		c.SilenceUsage = true
	}
	if err := cmd.Execute(); err != nil {
		Report(cmd.Name(), err)
		return 1
	}
	return 0
}

// Report logs a stage failure once, classified by the error taxonomy.
func Report(stage string, err error) {
	ctx := log.WithField("stage", stage)
	switch {
	case errors.Is(err, data.ErrNotFound):
		ctx.Errorf("input file was not found: %v", err)
	case errors.Is(err, data.ErrSchema):
		ctx.Errorf("input table does not have the expected columns: %v", err)
	case errors.Is(err, data.ErrMalformed):
		ctx.Errorf("input table could not be read: %v", err)
	default:
		ctx.Errorf("an error occurred during processing: %v", err)
	}
}

// PathFlag registers a path-valued flag bound to target.
func PathFlag(fs *pflag.FlagSet, target *string, name, value, usage string) {
	fs.StringVar(target, name, value, usage)
	_ = fs.SetAnnotation(name, cobra.BashCompFilenameExt, []string{})
}
