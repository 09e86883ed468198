package metrics

import (
	"slices"
	"strings"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

// Compute filters orders to [start, end] and derives every dashboard view
// from the result. A range with start after end selects nothing.
func Compute(orders []models.Order, start, end time.Time) Bundle {
	view := Filter(orders, start, end)

	return Bundle{
		Start:          start,
		End:            end,
		TotalOrder:     TotalOrder(view),
		DistinctOrders: DistinctOrders(view),
		TotalSales:     TotalSales(view),
		MeanSales:      MeanSales(view),
		TopProducts:    TopByProduct(view),
		TopCities:      TopByCity(view),
		OrdersByMonth:  OrdersByMonth(view),
		RevenueByMonth: RevenueByMonth(view),
		RFM:            RFM(view),
	}
}

// Filter returns a new slice with the orders purchased within [start, end].
func Filter(orders []models.Order, start, end time.Time) []models.Order {
	view := []models.Order{}
	if start.After(end) {
		return view
	}
	for _, o := range orders {
		if o.PurchasedAt.Before(start) || o.PurchasedAt.After(end) {
			continue
		}
		view = append(view, o)
	}
	return view
}

// TotalOrder counts rows in the view.
func TotalOrder(view []models.Order) int {
	return len(view)
}

func DistinctOrders(view []models.Order) int {
	seen := make(map[string]struct{}, len(view))
	for _, o := range view {
		seen[o.OrderID] = struct{}{}
	}
	return len(seen)
}

// TotalSales is the exact sum of prices rounded to two places, ties to even.
func TotalSales(view []models.Order) money.Decimal {
	return sumPrices(view).Round()
}

// MeanSales is the mean price rounded to two places, ties to even. An empty
// view has a mean of zero.
func MeanSales(view []models.Order) money.Decimal {
	if len(view) == 0 {
		return money.Decimal{}.Round()
	}
	return sumPrices(view).Div(money.NewDecimalFromInt64(int64(len(view)))).Round()
}

func sumPrices(view []models.Order) money.Decimal {
	prices := make([]money.Decimal, len(view))
	for i, o := range view {
		prices[i] = o.Price
	}
	return money.Sum(prices)
}

func TopByProduct(view []models.Order) []GroupCount {
	return topByDistinctOrders(view, func(o models.Order) string { return o.ProductCategoryName })
}

func TopByCity(view []models.Order) []GroupCount {
	return topByDistinctOrders(view, func(o models.Order) string { return o.CustomerCity })
}

// topByDistinctOrders ranks groups by their number of distinct order ids.
// Equal counts keep the order in which the groups first appear in the view.
// Rows with a blank key belong to no group.
func topByDistinctOrders(view []models.Order, key func(models.Order) string) []GroupCount {
	groups := newDistinctCounter[string]()
	for _, o := range view {
		k := key(o)
		if k == "" {
			continue
		}
		groups.add(k, o.OrderID)
	}

	ranked := make([]GroupCount, 0, len(groups.keys))
	for _, k := range groups.keys {
		ranked = append(ranked, GroupCount{Key: k, Orders: groups.count(k)})
	}
	slices.SortStableFunc(ranked, func(a, b GroupCount) int {
		return b.Orders - a.Orders
	})

	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}

// OrdersByMonth counts distinct order ids per purchase month, oldest first.
// Months without orders are absent.
func OrdersByMonth(view []models.Order) []MonthlyOrders {
	months := newDistinctCounter[time.Time]()
	for _, o := range view {
		months.add(o.PurchaseMonth, o.OrderID)
	}

	series := make([]MonthlyOrders, 0, len(months.keys))
	for _, m := range months.keys {
		series = append(series, MonthlyOrders{Month: m, Orders: months.count(m)})
	}
	slices.SortFunc(series, func(a, b MonthlyOrders) int { return a.Month.Compare(b.Month) })
	return series
}

// RevenueByMonth sums prices per purchase month, oldest first.
func RevenueByMonth(view []models.Order) []MonthlyRevenue {
	totals := map[time.Time]money.Decimal{}
	var months []time.Time
	for _, o := range view {
		total, ok := totals[o.PurchaseMonth]
		if !ok {
			months = append(months, o.PurchaseMonth)
		}
		totals[o.PurchaseMonth] = total.Add(o.Price)
	}

	series := make([]MonthlyRevenue, 0, len(months))
	for _, m := range months {
		series = append(series, MonthlyRevenue{Month: m, Revenue: totals[m]})
	}
	slices.SortFunc(series, func(a, b MonthlyRevenue) int { return a.Month.Compare(b.Month) })
	return series
}

type customerAgg struct {
	frequency int
	monetary  money.Decimal
	lastDate  time.Time
}

// RFM derives one record per customer, ordered by customer id. Recency is
// measured in whole days back from the latest purchase date in the view.
func RFM(view []models.Order) []RFMRecord {
	customers := map[string]*customerAgg{}
	var recent time.Time
	for _, o := range view {
		day := models.DateOf(o.PurchasedAt)
		if day.After(recent) {
			recent = day
		}

		agg, ok := customers[o.CustomerID]
		if !ok {
			agg = &customerAgg{}
			customers[o.CustomerID] = agg
		}
		agg.frequency++
		agg.monetary = agg.monetary.Add(o.Price)
		if day.After(agg.lastDate) {
			agg.lastDate = day
		}
	}

	records := make([]RFMRecord, 0, len(customers))
	for id, agg := range customers {
		records = append(records, RFMRecord{
			CustomerID: id,
			Frequency:  agg.frequency,
			Monetary:   agg.monetary,
			Recency:    daysBetween(agg.lastDate, recent),
		})
	}
	slices.SortFunc(records, func(a, b RFMRecord) int { return strings.Compare(a.CustomerID, b.CustomerID) })
	return records
}

// daysBetween counts whole days from one UTC midnight to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// distinctCounter counts distinct order ids per group key and remembers the
// order in which keys were first seen.
type distinctCounter[K comparable] struct {
	keys []K
	ids  map[K]map[string]struct{}
}

func newDistinctCounter[K comparable]() *distinctCounter[K] {
	return &distinctCounter[K]{ids: map[K]map[string]struct{}{}}
}

func (c *distinctCounter[K]) add(key K, orderID string) {
	set, ok := c.ids[key]
	if !ok {
		set = map[string]struct{}{}
		c.ids[key] = set
		c.keys = append(c.keys, key)
	}
	set[orderID] = struct{}{}
}

func (c *distinctCounter[K]) count(key K) int {
	return len(c.ids[key])
}
