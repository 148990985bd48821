package pipeline

import "github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"

// Schema names the columns a pipeline reads: categorical features are
// one-hot encoded, numeric features pass through unchanged, Target is the
// regression label.
type Schema struct {
	Categorical []string `cbor:"1,keyasint"`
	Numeric     []string `cbor:"2,keyasint"`
	Target      string   `cbor:"3,keyasint"`
}

// Features lists the input columns in the order the transformed matrix
// is laid out: encoded categorical blocks first, then numeric passthrough.
func (s Schema) Features() []string {
	out := make([]string, 0, len(s.Categorical)+len(s.Numeric))
	out = append(out, s.Categorical...)
	return append(out, s.Numeric...)
}

// Validate fails with data.ErrSchema when f lacks any feature column, or
// the target when withTarget is set.
func (s Schema) Validate(f *data.Frame, withTarget bool) error {
	cols := s.Features()
	if withTarget {
		cols = append(cols, s.Target)
	}
	return f.Require(cols...)
}
