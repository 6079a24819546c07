package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/seastock/seastock/infrastructure/http/response"
	"github.com/seastock/seastock/infrastructure/service/logger"
	"github.com/seastock/seastock/infrastructure/service/ratelimit"
)

// RateLimitMiddleware throttles login attempts per client IP using fixed
// Redis windows. Limiter failures fail open: an unreachable Redis must not
// take authentication down with it.
type RateLimitMiddleware struct {
	service  ratelimit.RateLimitService
	logger   logger.Logger
	attempts int
	window   time.Duration
}

func NewRateLimitMiddleware(service ratelimit.RateLimitService, log logger.Logger, attempts int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		service:  service,
		logger:   log,
		attempts: attempts,
		window:   window,
	}
}

func (m *RateLimitMiddleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := "login:" + clientIP(r)

		under, err := m.service.CheckLimit(r.Context(), key, m.attempts, m.window)
		if err != nil {
			m.logger.Error(r.Context(), "rate limit check failed", err, map[string]interface{}{"key": key})
			next.ServeHTTP(w, r)
			return
		}
		if !under {
			m.logger.Warn(r.Context(), "login rate limit exceeded", map[string]interface{}{"key": key})
			response.Error(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
			return
		}

		if err := m.service.Increment(r.Context(), key, m.window); err != nil {
			m.logger.Error(r.Context(), "rate limit increment failed", err, map[string]interface{}{"key": key})
		}
		next.ServeHTTP(w, r)
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
