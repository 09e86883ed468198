package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

const (
	colOrderID       = "order_id"
	colCustomerID    = "customer_id"
	colCustomerCity  = "customer_city"
	colCategory      = "product_category_name"
	colPrice         = "price"
	colPurchasedAt   = "order_purchase_timestamp"
	colPurchaseMonth = "purchase_month_year"
)

var requiredColumns = []string{colOrderID, colCustomerID, colCustomerCity, colCategory, colPrice, colPurchasedAt}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

var ErrMissingColumn = errors.New("missing required column")

// ReadCSV decodes the order dataset. Columns are matched by header name, so
// extra columns (a saved dataframe index, customer state, ...) are ignored.
func ReadCSV(r io.Reader) ([]models.Order, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	monthIdx, hasMonth := index[colPurchaseMonth]

	var orders []models.Order
	for row := 2; ; row++ { // header is row 1
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		field := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		order, err := parseRow(field)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		if hasMonth && monthIdx < len(record) && strings.TrimSpace(record[monthIdx]) != "" {
			month, err := ParseTimestamp(strings.TrimSpace(record[monthIdx]))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid %s: %w", row, colPurchaseMonth, err)
			}
			order.PurchaseMonth = models.MonthOf(month)
		}

		orders = append(orders, order)
	}
	return orders, nil
}

func parseRow(field func(string) string) (models.Order, error) {
	o := models.Order{
		OrderID:             field(colOrderID),
		CustomerID:          field(colCustomerID),
		CustomerCity:        field(colCustomerCity),
		ProductCategoryName: field(colCategory),
	}
	if o.OrderID == "" {
		return o, errors.New("missing order_id")
	}
	if o.CustomerID == "" {
		return o, errors.New("missing customer_id")
	}

	price, err := money.NewDecimal(field(colPrice))
	if err != nil {
		return o, fmt.Errorf("invalid price: %w", err)
	}
	if price.Negative() {
		return o, errors.New("invalid price: negative")
	}
	o.Price = price

	ts := field(colPurchasedAt)
	if ts == "" {
		return o, fmt.Errorf("missing %s", colPurchasedAt)
	}
	o.PurchasedAt, err = ParseTimestamp(ts)
	if err != nil {
		return o, fmt.Errorf("invalid %s: %w", colPurchasedAt, err)
	}
	o.PurchaseMonth = models.MonthOf(o.PurchasedAt)
	return o, nil
}

// ParseTimestamp accepts the timestamp layouts found in dataframe exports.
// Values without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
