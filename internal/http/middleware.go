package http

import (
	"context"
	"net"
	"net/http"

	"github.com/stockops/stock-manager/internal/auth"
	rl "github.com/stockops/stock-manager/internal/http/rate_limiter"
	"github.com/stockops/stock-manager/internal/models"
)

type contextKey string

const sessionKey = contextKey("session")

// SessionMiddleware gates every route behind a valid session token. The
// token carries only the display name; this is the session gate, not a
// security boundary.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.SessionFromRequestHeader(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid session token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession returns the session stored by SessionMiddleware.
func GetSession(r *http.Request) models.Session {
	if val, ok := r.Context().Value(sessionKey).(models.Session); ok {
		return val
	}
	return models.Session{}
}

// RateLimitMiddleware applies the per-visitor limiter keyed by client IP.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
