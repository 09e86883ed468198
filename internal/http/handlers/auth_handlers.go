package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate an administrator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if auth.CheckPassword(user.PasswordHash, credentials.Password) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(LoginResult{Token: token})

	if err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
