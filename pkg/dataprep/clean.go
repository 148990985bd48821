package dataprep

import (
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
)

// DropMissing removes every row holding a missing value in any of cols.
// Column order and the order of the surviving rows are preserved.
// Unknown columns fail with data.ErrSchema.
func DropMissing(f *data.Frame, cols ...string) (*data.Frame, error) {
	if err := f.Require(cols...); err != nil {
		return nil, err
	}
	idx := make([]int, len(cols))
	for i, c := range cols {
		idx[i], _ = f.Index(c)
	}
	return f.Filter(func(row []string) bool {
		for _, j := range idx {
			if data.IsMissing(row[j]) {
				return false
			}
		}
		return true
	}), nil
}
