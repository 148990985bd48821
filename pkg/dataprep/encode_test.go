package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneHotEncoder(t *testing.T) {
	enc := NewOneHotEncoder([]string{"DEPE", "GEN"})
	X := [][]string{
		{"3", "1"},
		{"1", "2"},
		{"2", "1"},
		{"1", "NA"},
	}
	got, err := enc.FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"1", "2", "3"}, {"", "1", "2"}}, enc.Categories)
	assert.Equal(t, 6, enc.Width())
	assert.Equal(t, []string{"DEPE_1", "DEPE_2", "DEPE_3", "GEN_", "GEN_1", "GEN_2"}, enc.FeatureNames())
	assert.Equal(t, [][]float64{
		{0, 0, 1, 0, 1, 0},
		{1, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 1, 0},
		{1, 0, 0, 1, 0, 0},
	}, got)
}

func TestOneHotEncoderUnknownCategory(t *testing.T) {
	enc := NewOneHotEncoder([]string{"DEPE", "GEN"})
	require.NoError(t, enc.Fit([][]string{{"1", "1"}, {"2", "2"}}))

	got, err := enc.Transform([][]string{{"9", "2"}, {"1", "7"}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{0, 0, 0, 1},
		{1, 0, 0, 0},
	}, got)
}

func TestOneHotEncoderNoColumns(t *testing.T) {
	enc := NewOneHotEncoder(nil)
	got, err := enc.FitTransform([][]string{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{}, {}}, got)
}

func TestOneHotEncoderErrors(t *testing.T) {
	enc := NewOneHotEncoder([]string{"A"})
	_, err := enc.Transform([][]string{{"1"}})
	assert.Error(t, err, "transform before fit")

	assert.Error(t, enc.Fit([][]string{{"1", "2"}}))
}
