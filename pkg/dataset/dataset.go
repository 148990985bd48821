// Package dataset implements the cleaning stage: it turns the raw student
// table into the processed table every later stage reads.
package dataset

import (
	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/dataprep"
)

// RequiredColumns must hold a value in every cleaned row.
var RequiredColumns = []string{data.ColGeneralAverage, data.ColAttendance}

// Config locates the input and output tables of a cleaning run.
type Config struct {
	InputPath  string
	OutputPath string
}

// Report counts the rows seen by a cleaning run.
type Report struct {
	RowsIn  int
	RowsOut int
}

// Dropped is the number of rows removed.
func (r Report) Dropped() int { return r.RowsIn - r.RowsOut }

// Clean loads the raw table, drops rows missing any required column and
// writes the rest, columns and order intact, to cfg.OutputPath. Nothing is
// written when loading or cleaning fails.
func Clean(cfg Config) (Report, error) {
	log.Info("processing dataset")

	raw, err := data.ReadCSV(cfg.InputPath)
	if err != nil {
		return Report{}, err
	}
	log.Infof("loaded dataset from %s with %d rows", cfg.InputPath, raw.Len())

	cleaned, err := dataprep.DropMissing(raw, RequiredColumns...)
	if err != nil {
		return Report{}, errors.WithMessagef(err, "clean %s", cfg.InputPath)
	}
	report := Report{RowsIn: raw.Len(), RowsOut: cleaned.Len()}
	log.WithField("dropped", report.Dropped()).Infof("rows after dropping nulls in %s and %s: %d", data.ColGeneralAverage, data.ColAttendance, cleaned.Len())

	if err := data.WriteCSV(cfg.OutputPath, cleaned); err != nil {
		return Report{}, errors.Wrapf(err, "write %s", cfg.OutputPath)
	}
	log.Infof("processed dataset saved to %s", cfg.OutputPath)
	return report, nil
}
