package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/middleware"
)

// GetBansHandler godoc
// @Summary Active bans and today's ban log
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ban.Status
// @Failure 401 {string} string "Unauthorized"
// @Router /admin/bans [get]
func GetBansHandler(w http.ResponseWriter, r *http.Request) {
	status, err := banService.Status()
	if err != nil {
		http.Error(w, "failed to read ban store", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, status); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UnbanHandler godoc
// @Summary Lift the ban on a client
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param target path string true "Banned client address"
// @Success 200 {object} UnbanResult
// @Failure 401 {string} string "Unauthorized"
// @Failure 404 {string} string "No active ban"
// @Router /admin/bans/{target} [delete]
func UnbanHandler(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "target")
	lifted, err := banService.Unban(target)
	if err != nil {
		http.Error(w, "failed to update ban store", http.StatusInternalServerError)
		return
	}
	if !lifted {
		http.Error(w, "no active ban for "+target, http.StatusNotFound)
		return
	}

	log.Printf("🔓 %s lifted the ban on %s", mw.GetUsername(r), target)
	if err := writeJSON(w, http.StatusOK, UnbanResult{Target: target, Lifted: true}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
