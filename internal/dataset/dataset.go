// Package dataset loads the order table once and keeps it read-only.
package dataset

import (
	"slices"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
)

// Dataset is the loaded order table, sorted by purchase timestamp. It is
// never modified after New returns and is safe for concurrent readers.
type Dataset struct {
	orders []models.Order
}

func New(orders []models.Order) *Dataset {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b models.Order) int {
		return a.PurchasedAt.Compare(b.PurchasedAt)
	})
	return &Dataset{orders: sorted}
}

// Orders returns the loaded rows. Callers must treat the slice as read-only.
func (d *Dataset) Orders() []models.Order {
	return d.orders
}

func (d *Dataset) Len() int {
	return len(d.orders)
}

// Bounds returns the earliest and latest purchase timestamps. ok is false
// for an empty dataset.
func (d *Dataset) Bounds() (minDate, maxDate time.Time, ok bool) {
	if len(d.orders) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return d.orders[0].PurchasedAt, d.orders[len(d.orders)-1].PurchasedAt, true
}
