// Package metrics computes the dashboard views from the order table. Every
// function here is pure: it reads the rows it is given and returns new
// values without modifying its input.
package metrics

import (
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

// TopN is the length of the product and city rankings.
const TopN = 10

type GroupCount struct {
	Key    string `json:"key"`
	Orders int    `json:"orders"`
}

type MonthlyOrders struct {
	Month  time.Time `json:"month"`
	Orders int       `json:"orders"`
}

type MonthlyRevenue struct {
	Month   time.Time     `json:"month"`
	Revenue money.Decimal `json:"revenue"`
}

type RFMRecord struct {
	CustomerID string        `json:"customer_id"`
	Frequency  int           `json:"frequency"`
	Monetary   money.Decimal `json:"monetary"`
	Recency    int           `json:"recency"`
}

// Bundle is everything the dashboard renders for one date range.
//
// TotalOrder counts rows, so an order with three items counts three times;
// the grouped views count distinct order ids. DistinctOrders is reported
// alongside so the two can be told apart.
type Bundle struct {
	Start          time.Time        `json:"start"`
	End            time.Time        `json:"end"`
	TotalOrder     int              `json:"total_order"`
	DistinctOrders int              `json:"distinct_orders"`
	TotalSales     money.Decimal    `json:"total_sales"`
	MeanSales      money.Decimal    `json:"mean_sales"`
	TopProducts    []GroupCount     `json:"top_products"`
	TopCities      []GroupCount     `json:"top_cities"`
	OrdersByMonth  []MonthlyOrders  `json:"orders_by_month"`
	RevenueByMonth []MonthlyRevenue `json:"revenue_by_month"`
	RFM            []RFMRecord      `json:"rfm"`
}
