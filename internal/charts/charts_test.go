package charts

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sampleBundle() metrics.Bundle {
	var orders []models.Order
	cities := []string{"sao paulo", "rio de janeiro", "belo horizonte"}
	for i := 0; i < 30; i++ {
		ts := time.Date(2017, time.Month(1+i%4), 1+i%27, 10, 0, 0, 0, time.UTC)
		orders = append(orders, models.Order{
			OrderID:             string(rune('a'+i%26)) + "-order",
			CustomerID:          string(rune('a' + i%7)),
			CustomerCity:        cities[i%len(cities)],
			ProductCategoryName: "cat",
			Price:               money.NewDecimalFromInt64(int64(10 + i)),
			PurchasedAt:         ts,
			PurchaseMonth:       models.MonthOf(ts),
		})
	}
	return metrics.Compute(orders, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2017, 12, 31, 0, 0, 0, 0, time.UTC))
}

func TestRender(t *testing.T) {
	b := sampleBundle()

	for _, kind := range []Kind{TopProducts, TopCities, OrdersByMonth, RevenueByMonth, RecencyHist, FrequencyHist, MonetaryHist} {
		t.Run(string(kind), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, kind, b))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "expected a PNG")
		})
	}
}

func TestRenderSingleMonth(t *testing.T) {
	b := metrics.Bundle{
		OrdersByMonth: []metrics.MonthlyOrders{{Month: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), Orders: 4}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, OrdersByMonth, b))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	for _, kind := range []Kind{TopProducts, RevenueByMonth, MonetaryHist} {
		assert.ErrorIs(t, Render(&buf, kind, metrics.Bundle{}), ErrNotEnoughData, kind)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("revenue-by-month")
	require.NoError(t, err)
	assert.Equal(t, RevenueByMonth, k)

	_, err = ParseKind("pie")
	assert.ErrorIs(t, err, ErrUnknownChart)
}
