package repo

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/dataset"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
)

// OrderSource produces the full order table. It is called once at startup.
type OrderSource interface {
	LoadOrders(ctx context.Context) ([]models.Order, error)
}

// CSVOrderSource reads the dataset from a local CSV file or an http(s) URL.
type CSVOrderSource struct {
	location string
}

func NewCSVOrderSource(location string) *CSVOrderSource {
	return &CSVOrderSource{location: location}
}

func (s *CSVOrderSource) LoadOrders(ctx context.Context) ([]models.Order, error) {
	rc, err := dataset.Open(ctx, s.location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	orders, err := dataset.ReadCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.location, err)
	}
	return orders, nil
}
