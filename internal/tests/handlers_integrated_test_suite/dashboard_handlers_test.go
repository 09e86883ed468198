package handlers_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/ban"
	rl "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/router"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"
)

func TestMain(m *testing.M) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("DATABASE_URL not set, skipping integration suite")
		os.Exit(0)
	}
	if err := setupTestRepos(dbURL); err != nil {
		teardown()
		log.Fatal("❌ ", err)
	}
	code := m.Run()
	teardown()
	os.Exit(code)
}

func TestDashboardFromPostgres(t *testing.T) {
	r := router.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/metrics?end=2017-02-10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var bundle metrics.Bundle
	if err := json.NewDecoder(w.Body).Decode(&bundle); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if bundle.TotalOrder != 3 {
		t.Errorf("expected 3 order rows, got %d", bundle.TotalOrder)
	}
	if got := bundle.TotalSales.String(); got != "60.00" {
		t.Errorf("expected total sales 60.00, got %s", got)
	}
	if got := bundle.MeanSales.String(); got != "20.00" {
		t.Errorf("expected mean sales 20.00, got %s", got)
	}
	if len(bundle.OrdersByMonth) != 2 {
		t.Errorf("expected 2 months, got %+v", bundle.OrdersByMonth)
	}
}

func TestAdminFlowWithPostgresUsers(t *testing.T) {
	r := router.NewRouter()

	token, err := generateToken(r, testUser, testPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	rl.Configure(0.001, 1)
	rl.CleanupAllVisitors()
	t.Cleanup(func() {
		rl.Configure(1000, 1000)
		rl.CleanupAllVisitors()
	})

	const client = "203.0.113.50"
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/bounds", nil)
		req.RemoteAddr = client + ":5000"
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/bans", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var status ban.Status
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode ban status: %v", err)
	}
	found := false
	for _, target := range status.ActiveBans {
		found = found || target == client
	}
	if !found {
		t.Errorf("expected %s to be banned, got %v", client, status.ActiveBans)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/bans/"+client, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected unban to succeed, got %d", w.Code)
	}
}
