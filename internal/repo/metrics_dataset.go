package repo

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/dataset"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"
)

// DatasetMetricsRepository computes dashboard metrics over the dataset
// loaded at startup. Every call recomputes from scratch.
type DatasetMetricsRepository struct {
	ds *dataset.Dataset
}

func NewDatasetMetricsRepository(ds *dataset.Dataset) *DatasetMetricsRepository {
	return &DatasetMetricsRepository{ds: ds}
}

// GetDashboardMetrics implements MetricsRepository.
func (r *DatasetMetricsRepository) GetDashboardMetrics(f OrderFilter) (metrics.Bundle, error) {
	start, end := r.window(f)
	return metrics.Compute(r.ds.Orders(), start, end), nil
}

// GetRFM implements MetricsRepository.
func (r *DatasetMetricsRepository) GetRFM(f OrderFilter) ([]metrics.RFMRecord, error) {
	start, end := r.window(f)
	return metrics.RFM(metrics.Filter(r.ds.Orders(), start, end)), nil
}

// Bounds implements MetricsRepository.
func (r *DatasetMetricsRepository) Bounds() (Bounds, error) {
	minDate, maxDate, ok := r.ds.Bounds()
	if !ok {
		return Bounds{}, ErrEmptyDataset
	}
	return Bounds{MinDate: minDate, MaxDate: maxDate, TotalRows: r.ds.Len()}, nil
}

// window resolves the filter against the dataset: missing bounds default to
// the first and last purchase. Bounds outside the dataset are kept as given,
// so a window entirely past the data selects nothing.
func (r *DatasetMetricsRepository) window(f OrderFilter) (time.Time, time.Time) {
	start, end, _ := r.ds.Bounds()
	if f.Since != nil {
		start = *f.Since
	}
	if f.Until != nil {
		end = *f.Until
	}
	return start, end
}
