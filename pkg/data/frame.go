package data

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors shared by every stage. Callers match them with errors.Is.
var (
	ErrNotFound  = errors.New("input file not found")
	ErrMalformed = errors.New("malformed input")
	ErrSchema    = errors.New("schema mismatch")
)

// naTokens are the cell values treated as missing.
var naTokens = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NULL": {}, "null": {}, "None": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "<NA>": {},
	"-1.#IND": {}, "-1.#QNAN": {}, "1.#IND": {}, "1.#QNAN": {},
}

// IsMissing reports whether a raw cell holds no value.
func IsMissing(cell string) bool {
	_, ok := naTokens[strings.TrimSpace(cell)]
	return ok
}

// Frame is a tabular dataset kept as raw string cells. Cells are never
// coerced on load so a frame can be written back byte-for-byte.
type Frame struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewFrame builds a frame over header and rows. Rows are not copied.
func NewFrame(header []string, rows [][]string) *Frame {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return &Frame{Header: header, Rows: rows, index: idx}
}

// Len returns the number of data rows.
func (f *Frame) Len() int { return len(f.Rows) }

// Index returns the position of the named column.
func (f *Frame) Index(name string) (int, bool) {
	i, ok := f.index[name]
	return i, ok
}

// Has reports whether the frame carries the named column.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Require fails with ErrSchema naming every absent column.
func (f *Frame) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if !f.Has(n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrSchema, "missing required columns %v", missing)
	}
	return nil
}

// Column returns the raw cells of the named column.
func (f *Frame) Column(name string) ([]string, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, errors.Wrapf(ErrSchema, "column %q not found", name)
	}
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[j]
	}
	return out, nil
}

// Floats parses the named column as float64. A missing or unparsable cell
// is a malformed-input error that names the offending row (1-based, header
// excluded).
func (f *Frame) Floats(name string) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, s := range col {
		if IsMissing(s) {
			return nil, errors.Wrapf(ErrMalformed, "column %q row %d: missing value", name, i+1)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "column %q row %d: %v", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// Filter returns a frame holding the rows for which keep is true, in order.
func (f *Frame) Filter(keep func(row []string) bool) *Frame {
	rows := make([][]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return NewFrame(f.Header, rows)
}

// Take returns a frame holding the rows at the given indices, in index order.
func (f *Frame) Take(indices []int) *Frame {
	rows := make([][]string, len(indices))
	for i, idx := range indices {
		rows[i] = f.Rows[idx]
	}
	return NewFrame(f.Header, rows)
}
