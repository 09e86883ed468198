// Package middleware holds the HTTP middleware shared by the dashboard and
// admin routes.
package middleware

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/ecommerce-dashboard/internal/http/ban"
	rl "github.com/rogerio-castellano/ecommerce-dashboard/internal/http/rate_limiter"
)

type contextKey string

const userKey = contextKey("username")

var banService *ban.Service

func SetBanService(s *ban.Service) {
	banService = s
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects banned clients and throttles the rest with a per-IP
// token bucket. Every rejection counts as a strike towards a ban.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if banService != nil {
			banned, err := banService.IsBanned(ip)
			if err != nil {
				log.Printf("ban lookup failed for %s: %v", ip, err)
			}
			if banned {
				http.Error(w, "too many requests; temporarily banned", http.StatusForbidden)
				return
			}
		}

		if !rl.GetVisitor(ip).Allow() {
			if banService != nil {
				if _, err := banService.Strike(ip, r.URL.Path); err != nil {
					log.Printf("strike failed for %s: %v", ip, err)
				}
			}
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin accepts requests carrying a valid bearer token with the
// admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		username, _ := claims["username"].(string)
		ctx := context.WithValue(r.Context(), userKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUsername(r *http.Request) string {
	if val, ok := r.Context().Value(userKey).(string); ok {
		return val
	}
	return ""
}
