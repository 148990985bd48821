// Package modeling implements the training stage: it fits the linear
// model of the general average on attendance and school attributes and
// persists the fitted pipeline.
package modeling

import (
	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/dataprep"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/loader"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/pipeline"
)

// TestRatio is the share of rows held out from fitting.
const TestRatio = 0.2

// CategoricalMarkers select the categorical columns by name substring.
var CategoricalMarkers = []string{data.MarkerDependencyCode, data.MarkerRegionCode}

// Config locates the training table and the model artifact.
type Config struct {
	InputPath string
	ModelPath string
}

// Result describes a finished training run.
type Result struct {
	Pipeline *pipeline.Pipeline
	// TrainIndices are the table rows the model was fitted on.
	TrainIndices []int
	// TestIndices are held out and not evaluated.
	TestIndices []int
}

// SchemaFor derives the feature schema of f: marker-matched categorical
// columns plus the gender column when present, attendance as the only
// numeric feature and the general average as target.
func SchemaFor(f *data.Frame) (pipeline.Schema, error) {
	if err := f.Require(data.ColAttendance, data.ColGeneralAverage); err != nil {
		return pipeline.Schema{}, err
	}
	return pipeline.Schema{
		Categorical: dataprep.SelectCategorical(f, CategoricalMarkers, data.ColGender),
		Numeric:     []string{data.ColAttendance},
		Target:      data.ColGeneralAverage,
	}, nil
}

// Train fits the pipeline on the seeded training partition of the table at
// cfg.InputPath and saves it to cfg.ModelPath.
func Train(cfg Config) (*Result, error) {
	log.Info("training model")

	f, err := data.ReadCSV(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	schema, err := SchemaFor(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "train on %s", cfg.InputPath)
	}
	if len(schema.Categorical) == 0 {
		log.Warn("no categorical columns matched, fitting on numeric features only")
	} else {
		log.Debugf("categorical features: %v", schema.Categorical)
	}

	train, test := loader.TrainTestSplit(f.Len(), TestRatio, loader.DefaultSeed)
	log.WithFields(log.Fields{
		"train": len(train),
		"test":  len(test),
	}).Info("split dataset")

	p := pipeline.New(schema)
	log.Info("fitting linear regression")
	if err := p.Fit(f.Take(train)); err != nil {
		return nil, errors.WithMessage(err, "fit pipeline")
	}
	log.Debugf("fitted %d coefficients, intercept %.4f", len(p.Regressor.W), p.Regressor.Bias())
	for _, c := range p.Coefficients() {
		log.WithField("weight", c.Weight).Debugf("coefficient %s", c.Feature)
	}

	if err := p.Save(cfg.ModelPath); err != nil {
		return nil, errors.Wrapf(err, "save model to %s", cfg.ModelPath)
	}
	log.Infof("model trained and saved to %s", cfg.ModelPath)
	return &Result{Pipeline: p, TrainIndices: train, TestIndices: test}, nil
}
