package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/dataset"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/ban"
	handler "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/middleware"
	rl "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/repo"
)

// Order o1 has two lines. Prices add up to 100.005.
const ordersCSV = `,order_id,customer_id,customer_city,product_category_name,price,order_purchase_timestamp,purchase_month_year
0,o1,c1,sao paulo,cama_mesa_banho,10.00,2017-01-05 12:30:00,2017-01-01
1,o1,c1,sao paulo,cama_mesa_banho,20.00,2017-01-05 12:30:00,2017-01-01
2,o2,c2,curitiba,beleza_saude,30.005,2017-02-10 09:00:00,2017-02-01
3,o3,c1,sao paulo,beleza_saude,40.00,2017-03-15 18:00:00,2017-03-01
`

var (
	token       string
	testDataset *dataset.Dataset
	banStore    *ban.MemoryStore
	banSvc      *ban.Service
	strikeCap   = 3
)

func init() {
	setupTestRepos("secret")
	r := router.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	orders, err := dataset.ReadCSV(strings.NewReader(ordersCSV))
	if err != nil {
		panic(fmt.Sprintf("error reading test dataset: %v", err))
	}
	testDataset = dataset.New(orders)
	handler.SetMetricsRepo(repo.NewDatasetMetricsRepository(testDataset))

	auth.Configure("test-secret", time.Minute)
	rl.Configure(1000, 1000)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := auth.HashPassword(password)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         "admin",
	})

	banStore = ban.NewMemoryStore()
	banSvc = ban.NewService(banStore, strikeCap, time.Minute, time.Hour)
	handler.SetBanService(banSvc)
	mw.SetBanService(banSvc)
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// get issues a GET from remoteAddr so tests can keep their rate limit
// buckets apart.
func get(r http.Handler, target, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminRequest(r http.Handler, method, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
