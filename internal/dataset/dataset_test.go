package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
)

const sampleCSV = `,order_id,customer_id,customer_city,product_category_name,price,order_purchase_timestamp,purchase_month_year
0,o2,c2,sao paulo,beleza_saude,20.00,2017-02-10 09:00:00,2017-02-01
1,o1,c1,rio de janeiro,cama_mesa_banho,10.00,2017-01-05 12:30:00,2017-01-01
2,o1,c1,rio de janeiro,cama_mesa_banho,30.005,2017-01-05 12:30:00,
`

func TestReadCSV(t *testing.T) {
	t.Run("decodes rows by header name", func(t *testing.T) {
		orders, err := ReadCSV(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		require.Len(t, orders, 3)

		first := orders[0]
		assert.Equal(t, "o2", first.OrderID)
		assert.Equal(t, "c2", first.CustomerID)
		assert.Equal(t, "sao paulo", first.CustomerCity)
		assert.Equal(t, "beleza_saude", first.ProductCategoryName)
		assert.Equal(t, "20.00", first.Price.String())
		assert.Equal(t, time.Date(2017, 2, 10, 9, 0, 0, 0, time.UTC), first.PurchasedAt)
		assert.Equal(t, time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC), first.PurchaseMonth)
	})

	t.Run("derives the purchase month when the column is blank", func(t *testing.T) {
		orders, err := ReadCSV(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), orders[2].PurchaseMonth)
	})

	t.Run("reports missing required columns", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("order_id,customer_id,price\no1,c1,1.00\n"))
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("reports the failing row", func(t *testing.T) {
		data := `order_id,customer_id,customer_city,product_category_name,price,order_purchase_timestamp
o1,c1,city,cat,1.00,2017-01-01 00:00:00
o2,c2,city,cat,-4,2017-01-01 00:00:00
`
		_, err := ReadCSV(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 3")
	})

	t.Run("rejects rows without a timestamp", func(t *testing.T) {
		data := `order_id,customer_id,customer_city,product_category_name,price,order_purchase_timestamp
o1,c1,city,cat,1.00,
`
		_, err := ReadCSV(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order_purchase_timestamp")
	})

	t.Run("empty body after header yields no rows", func(t *testing.T) {
		orders, err := ReadCSV(strings.NewReader("order_id,customer_id,customer_city,product_category_name,price,order_purchase_timestamp\n"))
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2018, 8, 29, 15, 0, 37, 0, time.UTC)
	for _, s := range []string{"2018-08-29 15:00:37", "2018-08-29T15:00:37", "2018-08-29T15:00:37Z"} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	got, err := ParseTimestamp("2018-08-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 8, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseTimestamp("29/08/2018")
	assert.Error(t, err)
}

func TestDataset(t *testing.T) {
	orders, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	original := append([]models.Order(nil), orders...)

	ds := New(orders)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, original, orders, "New must not reorder the caller's slice")

	got := ds.Orders()
	assert.Equal(t, "o1", got[0].OrderID)
	assert.Equal(t, "10.00", got[0].Price.String(), "stable sort keeps equal timestamps in input order")
	assert.Equal(t, "30.005", got[1].Price.String())
	assert.Equal(t, "o2", got[2].OrderID)

	minDate, maxDate, ok := ds.Bounds()
	require.True(t, ok)
	assert.Equal(t, time.Date(2017, 1, 5, 12, 30, 0, 0, time.UTC), minDate)
	assert.Equal(t, time.Date(2017, 2, 10, 9, 0, 0, 0, time.UTC), maxDate)

	_, _, ok = New(nil).Bounds()
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	t.Run("local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ecommerce.csv")
		require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

		rc, err := Open(context.Background(), path)
		require.NoError(t, err)
		defer rc.Close()

		orders, err := ReadCSV(rc)
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})

	t.Run("remote file", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/ecommerce.csv" {
				http.NotFound(w, r)
				return
			}
			w.Write([]byte(sampleCSV))
		}))
		defer srv.Close()

		rc, err := Open(context.Background(), srv.URL+"/ecommerce.csv")
		require.NoError(t, err)
		defer rc.Close()
		orders, err := ReadCSV(rc)
		require.NoError(t, err)
		assert.Len(t, orders, 3)

		_, err = Open(context.Background(), srv.URL+"/missing.csv")
		assert.ErrorContains(t, err, "unexpected status")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
