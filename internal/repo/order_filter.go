package repo

import "time"

// OrderFilter selects a purchase-date window. Nil bounds mean the dataset's
// own first or last purchase.
type OrderFilter struct {
	Since *time.Time
	Until *time.Time
}
