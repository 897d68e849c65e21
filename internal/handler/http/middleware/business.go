package middleware

import (
	"context"
	"net/http"

	"github.com/shiftmind/shiftmind-backend-go/internal/handler/http/response"
	"github.com/shiftmind/shiftmind-backend-go/internal/pkg/validator"
)

type contextKey string

const businessIDKey contextKey = "business_id"

// BusinessRequired rejects requests without a business_id query parameter and
// stores the id in the request context for handlers.
func BusinessRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		businessID := r.URL.Query().Get("business_id")
		if validator.IsEmpty(businessID) {
			response.BadRequest(w, "business_id query parameter is required", nil)
			return
		}
		if !validator.IsValidUUID(businessID) {
			response.BadRequest(w, "business_id must be a valid UUID", nil)
			return
		}

		ctx := context.WithValue(r.Context(), businessIDKey, businessID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BusinessID returns the business id stored by BusinessRequired, or "" when
// the middleware did not run.
func BusinessID(ctx context.Context) string {
	id, _ := ctx.Value(businessIDKey).(string)
	return id
}
