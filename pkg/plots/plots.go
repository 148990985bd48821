// Package plots implements the reporting stage: descriptive figures of the
// processed student table.
package plots

import (
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/data"
	"github.com/tomas-bustamante-h/rendimiento-escolar-cl/pkg/stats"
)

// Figure file names inside the output directory.
const (
	ScatterFile = "asistencia_vs_rendimiento.png"
	BarFile     = "rendimiento_por_dependencia.png"
)

var (
	pointColor = color.NRGBA{R: 31, G: 119, B: 180, A: 128}
	barColor   = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
)

// Config locates the processed table and the figures directory.
type Config struct {
	InputPath string
	OutputDir string
}

// Generate renders every figure the table supports and returns the written
// paths. The scatter is always drawn; the dependency bar chart only when
// the table carries a dependency label column.
func Generate(cfg Config) ([]string, error) {
	log.Info("generating figures")

	f, err := data.ReadCSV(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", cfg.OutputDir)
	}
	attendance, err := f.Floats(data.ColAttendance)
	if err != nil {
		return nil, err
	}
	average, err := f.Floats(data.ColGeneralAverage)
	if err != nil {
		return nil, err
	}
	logSummary(data.ColAttendance, attendance)
	logSummary(data.ColGeneralAverage, average)

	var written []string
	scatterPath := filepath.Join(cfg.OutputDir, ScatterFile)
	if err := Scatter(attendance, average, scatterPath); err != nil {
		return nil, err
	}
	log.Infof("scatter plot saved to %s", scatterPath)
	written = append(written, scatterPath)

	if f.Has(data.ColDependency) {
		labels, err := f.Column(data.ColDependency)
		if err != nil {
			return nil, err
		}
		groups, err := stats.GroupMeans(labels, average, data.IsMissing)
		if err != nil {
			return nil, err
		}
		barPath := filepath.Join(cfg.OutputDir, BarFile)
		if err := Bar(groups, barPath); err != nil {
			return nil, err
		}
		log.Infof("bar chart saved to %s", barPath)
		written = append(written, barPath)
	}

	log.Info("figure generation complete")
	return written, nil
}

func logSummary(name string, x []float64) {
	s, err := stats.Describe(x)
	if err != nil {
		log.WithError(err).Debugf("could not summarize %s", name)
		return
	}
	log.WithFields(log.Fields{
		"count":  s.Count,
		"mean":   s.Mean,
		"std":    s.Std,
		"min":    s.Min,
		"median": s.Median,
		"max":    s.Max,
	}).Debug(name)
}

// Scatter plots attendance against the general average and saves it.
func Scatter(attendance, average []float64, path string) error {
	if len(attendance) != len(average) {
		return errors.Errorf("scatter: %d x values but %d y values", len(attendance), len(average))
	}
	p := plot.New()
	p.Title.Text = "Relación entre Asistencia y Promedio General"
	p.X.Label.Text = "Porcentaje de Asistencia"
	p.Y.Label.Text = "Promedio General"

	if len(attendance) > 0 {
		pts := make(plotter.XYs, len(attendance))
		for i := range attendance {
			pts[i].X = attendance[i]
			pts[i].Y = average[i]
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "scatter")
		}
		s.Color = pointColor
		s.Shape = draw.CircleGlyph{}
		s.Radius = vg.Points(3)
		p.Add(s)
	}
	p.Add(plotter.NewGrid())

	return savePNG(p, 10*vg.Inch, 6*vg.Inch, path)
}

// Bar draws one horizontal bar per group with its mean general average
// and saves it.
func Bar(groups []stats.Group, path string) error {
	p := plot.New()
	p.Title.Text = "Promedio General por Tipo de Dependencia"
	p.X.Label.Text = data.ColGeneralAverage
	p.Y.Label.Text = data.ColDependency

	if len(groups) > 0 {
		values := make(plotter.Values, len(groups))
		labels := make([]string, len(groups))
		for i, g := range groups {
			values[i] = g.Mean
			labels[i] = g.Label
		}
		bars, err := plotter.NewBarChart(values, vg.Points(30))
		if err != nil {
			return errors.Wrap(err, "bar chart")
		}
		bars.Horizontal = true
		bars.Color = barColor
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalY(labels...)
	}

	return savePNG(p, 12*vg.Inch, 7*vg.Inch, path)
}

// savePNG renders p and replaces path with the image in one rename.
func savePNG(p *plot.Plot, w, h vg.Length, path string) error {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return errors.Wrap(err, "render png")
	}
	err = data.WriteFileAtomic(path, func(out io.Writer) error {
		_, err := wt.WriteTo(out)
		return err
	})
	return errors.Wrapf(err, "save %s", path)
}
