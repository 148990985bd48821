package stats

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

// Group is the aggregate of one label.
type Group struct {
	Label string
	Count int
	Mean  float64
}

// GroupMeans averages values per label. Groups are returned in the order
// their label first appears; labels for which skip returns true are left
// out.
func GroupMeans(labels []string, values []float64, skip func(label string) bool) ([]Group, error) {
	if len(labels) != len(values) {
		return nil, errors.Errorf("group means: %d labels but %d values", len(labels), len(values))
	}
	var order []string
	buckets := map[string][]float64{}
	for i, l := range labels {
		if skip != nil && skip(l) {
			continue
		}
		if _, ok := buckets[l]; !ok {
			order = append(order, l)
		}
		buckets[l] = append(buckets[l], values[i])
	}

	out := make([]Group, 0, len(order))
	for _, l := range order {
		mean, err := stats.Mean(buckets[l])
		if err != nil {
			return nil, errors.Wrapf(err, "mean of group %q", l)
		}
		out = append(out, Group{Label: l, Count: len(buckets[l]), Mean: mean})
	}
	return out, nil
}

// Summary holds the descriptive statistics logged for a numeric column.
type Summary struct {
	Count       int
	Mean, Std   float64
	Min, Median float64
	Max         float64
}

// Describe summarizes x. An empty slice yields a zero Summary. Std is the
// sample standard deviation, reported as 0 for a single value.
func Describe(x []float64) (Summary, error) {
	if len(x) == 0 {
		return Summary{}, nil
	}
	data := stats.Float64Data(x)
	var s Summary
	var err error
	s.Count = len(x)
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Count > 1 {
		if s.Std, err = data.StandardDeviationSample(); err != nil {
			return Summary{}, err
		}
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	return s, nil
}
