package repo

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"
)

// Bounds is the purchase-date range covered by the loaded dataset.
type Bounds struct {
	MinDate   time.Time `json:"min_date"`
	MaxDate   time.Time `json:"max_date"`
	TotalRows int       `json:"total_rows"`
}

type MetricsRepository interface {
	GetDashboardMetrics(f OrderFilter) (metrics.Bundle, error)
	GetRFM(f OrderFilter) ([]metrics.RFMRecord, error)
	Bounds() (Bounds, error)
}

var ErrEmptyDataset = errors.New("dataset is empty")
