package pipeline

import (
	"github.com/pkg/errors"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/dataprep"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/model"
)

// Pipeline chains the column preprocessing and the regressor. It is fitted
// and persisted as one unit.
type Pipeline struct {
	Schema    Schema                  `cbor:"1,keyasint"`
	Encoder   *dataprep.OneHotEncoder `cbor:"2,keyasint"`
	Regressor *model.LinearRegression `cbor:"3,keyasint"`
}

// New returns an unfitted pipeline over schema.
func New(schema Schema) *Pipeline {
	return &Pipeline{
		Schema:    schema,
		Encoder:   dataprep.NewOneHotEncoder(schema.Categorical),
		Regressor: model.NewLinearRegression(),
	}
}

// Fit learns the encoder vocabulary and the regression coefficients from f.
func (p *Pipeline) Fit(f *data.Frame) error {
	if err := p.Schema.Validate(f, true); err != nil {
		return err
	}
	cats, err := dataprep.FeatureSelect(f, p.Schema.Categorical)
	if err != nil {
		return err
	}
	if err := p.Encoder.Fit(cats); err != nil {
		return errors.Wrap(err, "fit encoder")
	}
	X, err := p.Transform(f)
	if err != nil {
		return err
	}
	y, err := f.Floats(p.Schema.Target)
	if err != nil {
		return err
	}
	return errors.Wrap(p.Regressor.Fit(X, y), "fit regressor")
}

// Transform builds the design matrix for f: one-hot blocks for each
// categorical column followed by the numeric columns as-is.
func (p *Pipeline) Transform(f *data.Frame) ([][]float64, error) {
	if err := p.Schema.Validate(f, false); err != nil {
		return nil, err
	}
	cats, err := dataprep.FeatureSelect(f, p.Schema.Categorical)
	if err != nil {
		return nil, err
	}
	X, err := p.Encoder.Transform(cats)
	if err != nil {
		return nil, errors.Wrap(err, "encode categorical features")
	}
	for _, name := range p.Schema.Numeric {
		col, err := f.Floats(name)
		if err != nil {
			return nil, err
		}
		for i, v := range col {
			X[i] = append(X[i], v)
		}
	}
	return X, nil
}

// Predict applies the fitted pipeline to every row of f. Categorical
// values not seen during Fit contribute nothing instead of failing.
func (p *Pipeline) Predict(f *data.Frame) ([]float64, error) {
	X, err := p.Transform(f)
	if err != nil {
		return nil, err
	}
	return p.Regressor.Predict(X), nil
}

// FeatureNames lists the columns of the transformed matrix.
func (p *Pipeline) FeatureNames() []string {
	return append(p.Encoder.FeatureNames(), p.Schema.Numeric...)
}

// Coefficient is one fitted weight and the feature it multiplies.
type Coefficient struct {
	Feature string
	Weight  float64
}

// Coefficients pairs the fitted weights with FeatureNames, in matrix order.
func (p *Pipeline) Coefficients() []Coefficient {
	names := p.FeatureNames()
	out := make([]Coefficient, 0, len(p.Regressor.W))
	for i, w := range p.Regressor.W {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		out = append(out, Coefficient{Feature: name, Weight: w})
	}
	return out
}
