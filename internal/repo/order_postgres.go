package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/money"
)

// PostgresOrderSource reads the dataset from a table holding the CSV
// columns (order_id, customer_id, customer_city, product_category_name,
// price, order_purchase_timestamp, purchase_month_year).
type PostgresOrderSource struct {
	db    *sql.DB
	table string
}

func NewPostgresOrderSource(db *sql.DB, table string) *PostgresOrderSource {
	return &PostgresOrderSource{db: db, table: table}
}

func (r *PostgresOrderSource) LoadOrders(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT order_id, customer_id, COALESCE(customer_city, ''), COALESCE(product_category_name, ''),
		       price::text, order_purchase_timestamp, purchase_month_year
		FROM %s
		ORDER BY order_purchase_timestamp`, r.tableIdentifier())

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o     models.Order
			price string
			month sql.NullTime
		)
		if err := rows.Scan(&o.OrderID, &o.CustomerID, &o.CustomerCity, &o.ProductCategoryName, &price, &o.PurchasedAt, &month); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if o.Price, err = money.NewDecimal(price); err != nil {
			return nil, fmt.Errorf("order %s: %w", o.OrderID, err)
		}
		o.PurchasedAt = o.PurchasedAt.UTC()
		if month.Valid {
			o.PurchaseMonth = models.MonthOf(month.Time)
		} else {
			o.PurchaseMonth = models.MonthOf(o.PurchasedAt)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// tableIdentifier quotes an optionally schema-qualified table name.
func (r *PostgresOrderSource) tableIdentifier() string {
	return pgx.Identifier(strings.Split(r.table, ".")).Sanitize()
}
