package data

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() *Frame {
	return NewFrame(
		[]string{"A", "B", "C"},
		[][]string{
			{"1", "x", "2.5"},
			{"2", "", "NaN"},
			{"3", "z", " 4 "},
		},
	)
}

func TestIsMissing(t *testing.T) {
	for _, cell := range []string{"", " ", "NA", "NaN", "nan", "NULL", "None", "<NA>", "#N/A"} {
		assert.True(t, IsMissing(cell), "%q", cell)
	}
	for _, cell := range []string{"0", "x", "Na N", "none-such"} {
		assert.False(t, IsMissing(cell), "%q", cell)
	}
}

func TestFrameRequire(t *testing.T) {
	f := sampleFrame()
	require.NoError(t, f.Require("A", "C"))

	err := f.Require("A", "PROM_GRAL", "ASISTENCIA")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))
	assert.Contains(t, err.Error(), "PROM_GRAL")
	assert.Contains(t, err.Error(), "ASISTENCIA")
}

func TestFrameFloats(t *testing.T) {
	f := sampleFrame()

	a, err := f.Floats("A")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, a)

	_, err = f.Floats("C")
	assert.True(t, errors.Is(err, ErrMalformed))

	_, err = f.Floats("B")
	assert.True(t, errors.Is(err, ErrMalformed))

	_, err = f.Floats("missing")
	assert.True(t, errors.Is(err, ErrSchema))
}

func TestFrameFilterAndTake(t *testing.T) {
	f := sampleFrame()

	kept := f.Filter(func(row []string) bool { return row[1] != "" })
	assert.Equal(t, 2, kept.Len())
	assert.Equal(t, f.Header, kept.Header)
	assert.Equal(t, "1", kept.Rows[0][0])
	assert.Equal(t, "3", kept.Rows[1][0])

	taken := f.Take([]int{2, 0})
	require.Equal(t, 2, taken.Len())
	assert.Equal(t, "3", taken.Rows[0][0])
	assert.Equal(t, "1", taken.Rows[1][0])
	assert.True(t, taken.Has("B"))
}
