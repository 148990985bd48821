package dataprep

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
)

// OneHotEncoder maps each categorical column to one indicator per category
// learned at fit time. A value never seen during Fit encodes as an all-zero
// block instead of failing. Missing cells are folded into a single ""
// category.
type OneHotEncoder struct {
	Columns    []string   `cbor:"1,keyasint"`
	Categories [][]string `cbor:"2,keyasint"`

	index []map[string]int
}

// NewOneHotEncoder returns an unfitted encoder over cols.
func NewOneHotEncoder(cols []string) *OneHotEncoder {
	return &OneHotEncoder{Columns: cols}
}

func normalize(cell string) string {
	if data.IsMissing(cell) {
		return ""
	}
	return cell
}

// Fit learns the sorted vocabulary of each column. X holds one row per
// sample with one cell per encoder column.
func (e *OneHotEncoder) Fit(X [][]string) error {
	unique := make([]map[string]struct{}, len(e.Columns))
	for j := range unique {
		unique[j] = map[string]struct{}{}
	}
	for i, row := range X {
		if len(row) != len(e.Columns) {
			return errors.Errorf("row %d has %d cells, encoder expects %d", i, len(row), len(e.Columns))
		}
		for j, v := range row {
			unique[j][normalize(v)] = struct{}{}
		}
	}
	e.Categories = make([][]string, len(e.Columns))
	for j, set := range unique {
		cats := make([]string, 0, len(set))
		for v := range set {
			cats = append(cats, v)
		}
		sort.Strings(cats)
		e.Categories[j] = cats
	}
	e.index = nil
	return nil
}

func (e *OneHotEncoder) lookup() []map[string]int {
	if e.index == nil {
		e.index = make([]map[string]int, len(e.Categories))
		for j, cats := range e.Categories {
			m := make(map[string]int, len(cats))
			for k, v := range cats {
				m[v] = k
			}
			e.index[j] = m
		}
	}
	return e.index
}

// Width is the number of indicator columns Transform produces.
func (e *OneHotEncoder) Width() int {
	w := 0
	for _, cats := range e.Categories {
		w += len(cats)
	}
	return w
}

// Transform encodes X. Column blocks follow the order of e.Columns.
func (e *OneHotEncoder) Transform(X [][]string) ([][]float64, error) {
	if e.Categories == nil && len(e.Columns) > 0 {
		return nil, errors.New("one-hot encoder is not fitted")
	}
	index := e.lookup()
	width := e.Width()
	out := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != len(e.Columns) {
			return nil, errors.Errorf("row %d has %d cells, encoder expects %d", i, len(row), len(e.Columns))
		}
		vec := make([]float64, width)
		offset := 0
		for j, v := range row {
			if k, ok := index[j][normalize(v)]; ok {
				vec[offset+k] = 1
			}
			offset += len(e.Categories[j])
		}
		out[i] = vec
	}
	return out, nil
}

// FitTransform fits on X and encodes it.
func (e *OneHotEncoder) FitTransform(X [][]string) ([][]float64, error) {
	if err := e.Fit(X); err != nil {
		return nil, err
	}
	return e.Transform(X)
}

// FeatureNames lists the indicator columns as <column>_<category>.
func (e *OneHotEncoder) FeatureNames() []string {
	names := make([]string, 0, e.Width())
	for j, col := range e.Columns {
		for _, cat := range e.Categories[j] {
			names = append(names, col+"_"+cat)
		}
	}
	return names
}
