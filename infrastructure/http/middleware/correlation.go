package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/seastock/seastock/pkg/correlation"
)

// CorrelationIDMiddleware attaches a correlation ID to every request, taking
// the caller's header when present and generating one otherwise. The ID is
// echoed back in the response and picked up by the structured logger.
func CorrelationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlation.Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(correlation.Header, id)
		next.ServeHTTP(w, r.WithContext(correlation.NewContext(r.Context(), id)))
	})
}
