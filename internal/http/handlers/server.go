package handlers

import (
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/ban"
	repo "github.com/rogerio-castellano/ecommerce-dashboard/internal/repo"
)

var (
	metricsRepo repo.MetricsRepository
	userRepo    repo.UserRepository
	banService  *ban.Service
)

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetBanService(s *ban.Service) {
	banService = s
}
