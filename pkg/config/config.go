// Package config resolves the on-disk project layout shared by the
// pipeline stages.
package config

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Environment keys.
const (
	EnvProjectRoot = "PROJ_ROOT"
	EnvLogLevel    = "LOG_LEVEL"
)

// Paths is the project directory layout. Every stage reads and writes
// inside it unless a path flag overrides a location.
type Paths struct {
	Root      string
	Data      string
	Raw       string
	Interim   string
	Processed string
	External  string
	Models    string
	Reports   string
	Figures   string
}

// NewPaths derives the layout below root.
func NewPaths(root string) Paths {
	data := filepath.Join(root, "data")
	reports := filepath.Join(root, "reports")
	return Paths{
		Root:      root,
		Data:      data,
		Raw:       filepath.Join(data, "raw"),
		Interim:   filepath.Join(data, "interim"),
		Processed: filepath.Join(data, "processed"),
		External:  filepath.Join(data, "external"),
		Models:    filepath.Join(root, "models"),
		Reports:   reports,
		Figures:   filepath.Join(reports, "figures"),
	}
}

// Dataset is the default file name of raw and processed tables.
const Dataset = "dataset.csv"

// RawDataset is the default Cleaner input.
func (p Paths) RawDataset() string { return filepath.Join(p.Raw, Dataset) }

// ProcessedDataset is the default Cleaner output and Trainer/Plotter input.
func (p Paths) ProcessedDataset() string { return filepath.Join(p.Processed, Dataset) }

// ModelFile is the default Trainer output.
func (p Paths) ModelFile() string { return filepath.Join(p.Models, "model.cbor") }

// Config is the process-wide configuration resolved at startup.
type Config struct {
	Paths    Paths
	LogLevel string
}

// Load reads envFile when it exists and resolves the configuration from
// the environment. The project root defaults to the working directory.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(err, "load %s", envFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolve working directory")
	}
	v := viper.New()
	v.SetDefault(EnvProjectRoot, cwd)
	v.SetDefault(EnvLogLevel, "info")
	v.AutomaticEnv()

	root, err := filepath.Abs(v.GetString(EnvProjectRoot))
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", EnvProjectRoot)
	}
	cfg := &Config{Paths: NewPaths(root), LogLevel: v.GetString(EnvLogLevel)}
	log.Infof("PROJ_ROOT path is: %s", root)
	return cfg, nil
}
