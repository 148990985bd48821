package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/command"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/config"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/plots"
)

func TestDefaults(t *testing.T) {
	cmd := newCommand(&config.Config{Paths: config.NewPaths("/proj")})
	assert.Equal(t, "/proj/data/processed/dataset.csv", cmd.Flags().Lookup("input-path").DefValue)
	assert.Equal(t, "/proj/reports/figures", cmd.Flags().Lookup("output-dir").DefValue)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "dataset.csv")
	out := filepath.Join(dir, "figures")
	require.NoError(t, os.WriteFile(in, []byte("ASISTENCIA,PROM_GRAL,DEPENDENCIA\n90,6.0,Municipal\n80,5.0,Particular\n"), 0o644))

	require.Equal(t, 0, command.Main(newCommand, []string{"--input-path", in, "--output-dir", out}))
	for _, name := range []string{plots.ScatterFile, plots.BarFile} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
}
