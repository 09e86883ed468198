package metrics

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultBins matches the dashboard's RFM histograms.
const DefaultBins = 50

type RFMMetric string

const (
	Recency   RFMMetric = "recency"
	Frequency RFMMetric = "frequency"
	Monetary  RFMMetric = "monetary"
)

var ErrUnknownMetric = errors.New("unknown RFM metric")

func ParseRFMMetric(s string) (RFMMetric, error) {
	switch m := RFMMetric(s); m {
	case Recency, Frequency, Monetary:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// RFMValues extracts one column of the RFM table.
func RFMValues(records []RFMRecord, metric RFMMetric) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		switch metric {
		case Recency:
			values = append(values, float64(r.Recency))
		case Frequency:
			values = append(values, float64(r.Frequency))
		case Monetary:
			values = append(values, r.Monetary.Float64())
		}
	}
	return values
}

// Bin covers [Lower, Upper); the last bin of a histogram also includes Upper.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram splits [min, max] of values into equal-width bins. When every
// value is the same a single bin holds them all.
func Histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return []Bin{}
	}

	lo, hi := slices.Min(values), slices.Max(values)
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lower: lo + float64(i)*width, Upper: lo + float64(i+1)*width}
	}
	out[bins-1].Upper = hi

	for _, v := range values {
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
