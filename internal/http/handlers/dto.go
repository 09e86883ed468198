package handlers

import "github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type HistogramResult struct {
	Metric    string        `json:"metric"`
	Customers int           `json:"customers"`
	Bins      []metrics.Bin `json:"bins"`
}

type UnbanResult struct {
	Target string `json:"target"`
	Lifted bool   `json:"lifted"`
}
