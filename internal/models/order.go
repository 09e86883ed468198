package models

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

// Order is one line item of the e-commerce dataset. An order with several
// items appears once per item, so OrderID is not unique across rows.
type Order struct {
	OrderID             string        `json:"order_id"`
	CustomerID          string        `json:"customer_id"`
	CustomerCity        string        `json:"customer_city"`
	ProductCategoryName string        `json:"product_category_name"`
	Price               money.Decimal `json:"price"`
	PurchasedAt         time.Time     `json:"order_purchase_timestamp"`
	PurchaseMonth       time.Time     `json:"purchase_month_year"`
}

// MonthOf truncates t to the first instant of its month in UTC.
func MonthOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
