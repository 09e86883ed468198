package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/dataset"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/db"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/ban"
	handler "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/repo"
)

const (
	testUser     = "integration-admin"
	testPassword = "secret"
)

var (
	database   *sql.DB
	orderTable string
	cleanups   []func()
)

// setupTestRepos loads the dashboard from a scratch Postgres table and
// registers an admin in the users table. The ban store lives in Redis when
// REDIS_ADDR is set.
func setupTestRepos(dbURL string) error {
	var err error
	database, err = db.Connect(dbURL)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	cleanups = append(cleanups, func() { database.Close() })

	ctx := context.Background()
	orderTable = fmt.Sprintf("order_items_it_%d", time.Now().UnixNano())
	if _, err := database.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE %s (
		order_id text NOT NULL,
		customer_id text NOT NULL,
		customer_city text,
		product_category_name text,
		price numeric(12, 3) NOT NULL,
		order_purchase_timestamp timestamp NOT NULL,
		purchase_month_year date
	)`, orderTable)); err != nil {
		return fmt.Errorf("could not create order table: %w", err)
	}
	cleanups = append(cleanups, func() { database.Exec("DROP TABLE " + orderTable) })

	if _, err := database.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s VALUES
		('o1', 'c1', 'sao paulo', 'cama_mesa_banho', 10.00, '2017-01-05 12:30:00', '2017-01-01'),
		('o1', 'c1', 'sao paulo', 'cama_mesa_banho', 20.00, '2017-01-05 12:30:00', '2017-01-01'),
		('o2', 'c2', 'curitiba', 'beleza_saude', 30.005, '2017-02-10 09:00:00', '2017-02-01'),
		('o3', 'c1', 'sao paulo', 'beleza_saude', 40.00, '2017-03-15 18:00:00', NULL)`, orderTable)); err != nil {
		return fmt.Errorf("could not seed orders: %w", err)
	}

	orders, err := repo.NewPostgresOrderSource(database, orderTable).LoadOrders(ctx)
	if err != nil {
		return err
	}
	handler.SetMetricsRepo(repo.NewDatasetMetricsRepository(dataset.New(orders)))

	if _, err := database.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	)`); err != nil {
		return fmt.Errorf("could not create users table: %w", err)
	}
	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		return err
	}
	if _, err := database.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, 'admin')
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = 'admin'`,
		testUser, hash); err != nil {
		return fmt.Errorf("could not seed admin: %w", err)
	}
	cleanups = append(cleanups, func() { database.Exec("DELETE FROM users WHERE username = $1", testUser) })
	handler.SetUserRepo(repo.NewPostgresUserRepository(database))

	auth.Configure("integration-secret", time.Minute)
	rl.Configure(1000, 1000)

	var store ban.Store = ban.NewMemoryStore()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rs, err := redissvc.Connect(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			return fmt.Errorf("could not connect to Redis: %w", err)
		}
		cleanups = append(cleanups, func() { rs.Close() })
		store = ban.NewRedisStore(rs)
	}
	banService := ban.NewService(store, 2, time.Minute, time.Minute)
	handler.SetBanService(banService)
	mw.SetBanService(banService)
	return nil
}

func teardown() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}
