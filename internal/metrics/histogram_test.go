package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

func TestHistogram(t *testing.T) {
	t.Run("equal width bins with closed last bin", func(t *testing.T) {
		bins := Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)

		require.Len(t, bins, 5)
		assert.Equal(t, Bin{Lower: 0, Upper: 2, Count: 2}, bins[0])
		assert.Equal(t, Bin{Lower: 8, Upper: 10, Count: 3}, bins[4])

		total := 0
		for _, b := range bins {
			total += b.Count
		}
		assert.Equal(t, 11, total)
	})

	t.Run("single distinct value", func(t *testing.T) {
		bins := Histogram([]float64{3, 3, 3}, DefaultBins)
		assert.Equal(t, []Bin{{Lower: 3, Upper: 3, Count: 3}}, bins)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Histogram(nil, DefaultBins))
		assert.Empty(t, Histogram([]float64{1, 2}, 0))
	})
}

func TestRFMValues(t *testing.T) {
	records := []RFMRecord{
		{CustomerID: "a", Frequency: 2, Monetary: money.MustDecimal("30.50"), Recency: 0},
		{CustomerID: "b", Frequency: 1, Monetary: money.MustDecimal("15.00"), Recency: 28},
	}

	assert.Equal(t, []float64{0, 28}, RFMValues(records, Recency))
	assert.Equal(t, []float64{2, 1}, RFMValues(records, Frequency))
	assert.Equal(t, []float64{30.5, 15}, RFMValues(records, Monetary))
}

func TestParseRFMMetric(t *testing.T) {
	m, err := ParseRFMMetric("monetary")
	require.NoError(t, err)
	assert.Equal(t, Monetary, m)

	_, err = ParseRFMMetric("loyalty")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}
