package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
)

const rawCSV = `MRUN,COD_DEPE,COD_REG_RBD,GEN_ALU,ASISTENCIA,PROM_GRAL,DEPENDENCIA
1,1,13,1,95,6.1,Municipal
2,2,5,2,,5.4,Particular Subvencionado
3,3,13,1,88,5.9,Particular Pagado
4,1,8,2,NaN,4.9,Municipal
5,2,13,1,72,5.0,Particular Subvencionado
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCleanDropsRowsMissingRequiredFields(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data", "raw", "dataset.csv")
	out := filepath.Join(dir, "data", "processed", "dataset.csv")
	writeFile(t, in, rawCSV)

	report, err := Clean(Config{InputPath: in, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, Report{RowsIn: 5, RowsOut: 3}, report)
	assert.Equal(t, 2, report.Dropped())

	raw, err := data.ReadCSV(in)
	require.NoError(t, err)
	cleaned, err := data.ReadCSV(out)
	require.NoError(t, err)
	assert.Equal(t, raw.Header, cleaned.Header)
	want := [][]string{raw.Rows[0], raw.Rows[2], raw.Rows[4]}
	if diff := cmp.Diff(want, cleaned.Rows); diff != "" {
		t.Fatalf("cleaned rows mismatch (-want +got):\n%s", diff)
	}
	for _, row := range cleaned.Rows {
		for _, col := range RequiredColumns {
			j, _ := cleaned.Index(col)
			assert.False(t, data.IsMissing(row[j]))
		}
	}
}

func TestCleanDropsTruncatedRows(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")
	out := filepath.Join(dir, "processed", "dataset.csv")
	writeFile(t, in, "COD_DEPE,GEN_ALU,ASISTENCIA,PROM_GRAL\n1,1,90,6.0\n2,2\n3,1,85,5.5\n")

	report, err := Clean(Config{InputPath: in, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, Report{RowsIn: 3, RowsOut: 2}, report)

	cleaned, err := data.ReadCSV(out)
	require.NoError(t, err)
	want := [][]string{{"1", "1", "90", "6.0"}, {"3", "1", "85", "5.5"}}
	if diff := cmp.Diff(want, cleaned.Rows); diff != "" {
		t.Fatalf("cleaned rows mismatch (-want +got):\n%s", diff)
	}

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestCleanKeepsBareQuotes(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")
	out := filepath.Join(dir, "clean.csv")
	writeFile(t, in, "NOM_RBD,ASISTENCIA,PROM_GRAL\nLiceo \"A-1\",90,6.0\n")

	report, err := Clean(Config{InputPath: in, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, Report{RowsIn: 1, RowsOut: 1}, report)

	cleaned, err := data.ReadCSV(out)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{`Liceo "A-1"`, "90", "6.0"}}, cleaned.Rows)
}

func TestCleanIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")
	writeFile(t, in, rawCSV)

	_, err := Clean(Config{InputPath: in, OutputPath: first})
	require.NoError(t, err)
	report, err := Clean(Config{InputPath: first, OutputPath: second})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Dropped())

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestCleanMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "processed", "dataset.csv")

	_, err := Clean(Config{InputPath: filepath.Join(dir, "absent.csv"), OutputPath: out})
	require.Error(t, err)
	assert.True(t, errors.Is(err, data.ErrNotFound))
	_, statErr := os.Stat(filepath.Dir(out))
	assert.True(t, os.IsNotExist(statErr), "no output directory may be created")
}

func TestCleanMalformedInput(t *testing.T) {
	for name, tc := range map[string]struct {
		content string
		want    error
	}{
		"no required columns": {"A,B\n1,2\n", data.ErrSchema},
		"overlong row":        {"PROM_GRAL,ASISTENCIA\n1,2,3\n", data.ErrMalformed},
		"empty file":          {"", data.ErrMalformed},
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "raw.csv")
			out := filepath.Join(dir, "out", "clean.csv")
			writeFile(t, in, tc.content)

			_, err := Clean(Config{InputPath: in, OutputPath: out})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}
