package repo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/db"
)

const ordersCSV = `order_id,customer_id,customer_city,product_category_name,price,order_purchase_timestamp,purchase_month_year
o1,c1,sao paulo,cama_mesa_banho,10.00,2017-01-05 12:30:00,2017-01-01
o2,c2,curitiba,beleza_saude,20.00,2017-02-10 09:00:00,2017-02-01
`

func TestCSVOrderSource(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.csv")
		require.NoError(t, os.WriteFile(path, []byte(ordersCSV), 0o600))

		orders, err := NewCSVOrderSource(path).LoadOrders(context.Background())
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "curitiba", orders[1].CustomerCity)
	})

	t.Run("url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, ordersCSV)
		}))
		defer srv.Close()

		orders, err := NewCSVOrderSource(srv.URL).LoadOrders(context.Background())
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.csv")
		require.NoError(t, os.WriteFile(path, []byte("order_id\no1\n"), 0o600))

		_, err := NewCSVOrderSource(path).LoadOrders(context.Background())
		assert.ErrorContains(t, err, "missing required column")
	})
}

// TestPostgresOrderSource needs a reachable database in DATABASE_URL.
func TestPostgresOrderSource(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	database, err := db.Connect(dbURL)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	table := fmt.Sprintf("order_items_test_%d", time.Now().UnixNano())
	_, err = database.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE %s (
		order_id text NOT NULL,
		customer_id text NOT NULL,
		customer_city text,
		product_category_name text,
		price numeric(12, 3) NOT NULL,
		order_purchase_timestamp timestamp NOT NULL,
		purchase_month_year date
	)`, table))
	require.NoError(t, err)
	defer database.ExecContext(ctx, "DROP TABLE "+table)

	_, err = database.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s VALUES
		('o2', 'c2', 'curitiba', NULL, 30.005, '2017-02-10 09:00:00', NULL),
		('o1', 'c1', 'sao paulo', 'cama_mesa_banho', 10.00, '2017-01-05 12:30:00', '2017-01-01')`, table))
	require.NoError(t, err)

	orders, err := NewPostgresOrderSource(database, table).LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "o1", orders[0].OrderID)
	assert.Equal(t, "10.000", orders[0].Price.String())
	assert.Equal(t, "", orders[1].ProductCategoryName)
	assert.Equal(t, "30.005", orders[1].Price.String())
	assert.Equal(t, time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC), orders[1].PurchaseMonth)
}
