package dataprep

import (
	"strings"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
)

// SelectCategorical picks the categorical feature columns by name: every
// header containing one of markers, in header order, followed by each of
// fixed that the frame actually carries. A column is never listed twice.
// An empty result is valid.
func SelectCategorical(f *data.Frame, markers []string, fixed ...string) []string {
	var out []string
	seen := map[string]bool{}
	for _, h := range f.Header {
		for _, m := range markers {
			if strings.Contains(h, m) && !seen[h] {
				out = append(out, h)
				seen[h] = true
				break
			}
		}
	}
	for _, name := range fixed {
		if f.Has(name) && !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	return out
}

// FeatureSelect returns, per row, the raw cells of the named columns.
func FeatureSelect(f *data.Frame, cols []string) ([][]string, error) {
	if err := f.Require(cols...); err != nil {
		return nil, err
	}
	indices := make([]int, len(cols))
	for j, c := range cols {
		indices[j], _ = f.Index(c)
	}
	out := make([][]string, f.Len())
	for i, row := range f.Rows {
		selected := make([]string, len(indices))
		for j, idx := range indices {
			selected[j] = row[idx]
		}
		out[i] = selected
	}
	return out, nil
}
