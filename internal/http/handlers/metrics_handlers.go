package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"
	repo "github.com/rogerio-castellano/ecommerce-dashboard/internal/repo"
)

const maxHistogramBins = 500

// GetBoundsHandler godoc
// @Summary Date range covered by the dataset
// @Tags dashboard
// @Produce json
// @Success 200 {object} repo.Bounds
// @Failure 503 {string} string "Dataset is empty"
// @Router /dashboard/bounds [get]
func GetBoundsHandler(w http.ResponseWriter, r *http.Request) {
	bounds, err := metricsRepo.Bounds()
	if err != nil {
		if errors.Is(err, repo.ErrEmptyDataset) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "failed to read dataset bounds", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, bounds); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for a purchase-date range
// @Description Missing bounds default to the first and last purchase. A bare date as end covers the whole day.
// @Tags dashboard
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param end query string false "End date (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} metrics.Bundle
// @Failure 400 {string} string "Invalid date"
// @Router /dashboard/metrics [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := writeJSON(w, http.StatusOK, bundle); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetRFMHistogramHandler godoc
// @Summary Histogram of one RFM column
// @Tags dashboard
// @Produce json
// @Param metric query string true "recency, frequency or monetary"
// @Param bins query int false "Number of bins (1-500)" default(50)
// @Param start query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param end query string false "End date (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} HistogramResult
// @Failure 400 {string} string "Invalid parameters"
// @Router /dashboard/rfm/histogram [get]
func GetRFMHistogramHandler(w http.ResponseWriter, r *http.Request) {
	metric, err := metrics.ParseRFMMetric(r.URL.Query().Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bins := metrics.DefaultBins
	if s := r.URL.Query().Get("bins"); s != "" {
		bins, err = strconv.Atoi(s)
		if err != nil || bins < 1 || bins > maxHistogramBins {
			http.Error(w, "bins must be an integer between 1 and 500", http.StatusBadRequest)
			return
		}
	}

	filter, err := parseDateRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rfm, err := metricsRepo.GetRFM(filter)
	if err != nil {
		http.Error(w, "failed to compute RFM table", http.StatusInternalServerError)
		return
	}

	result := HistogramResult{
		Metric:    string(metric),
		Customers: len(rfm),
		Bins:      metrics.Histogram(metrics.RFMValues(rfm, metric), bins),
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
