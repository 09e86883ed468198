package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/charts"
)

// GetChartHandler godoc
// @Summary Render one dashboard view as a PNG chart
// @Tags dashboard
// @Produce png
// @Param chart path string true "products, cities, orders-by-month, revenue-by-month, recency, frequency or monetary"
// @Param start query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param end query string false "End date (YYYY-MM-DD or RFC3339)"
// @Success 200 {file} binary
// @Failure 400 {string} string "Invalid date"
// @Failure 404 {string} string "Unknown chart"
// @Failure 422 {string} string "Nothing to plot"
// @Router /dashboard/charts/{chart}.png [get]
func GetChartHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := charts.ParseKind(chi.URLParam(r, "chart"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	filter, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bundle, err := metricsRepo.GetDashboardMetrics(filter)
	if err != nil {
		http.Error(w, "failed to compute metrics", http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a failed chart still gets a proper status.
	var buf bytes.Buffer
	if err := charts.Render(&buf, kind, bundle); err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("❌ Failed to render chart %s: %v", kind, err)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Failed to write chart response: %v", err)
	}
}
