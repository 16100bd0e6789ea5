package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwise1/georemind/util/tracing"
	"github.com/bwise1/georemind/util/values"
	"github.com/google/uuid"
	"github.com/lucsky/cuid"
)

// RequestTracing handles the request tracing context
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID:     requestID,
			RequestSource: r.Header.Get(values.HeaderRequestSource),
		}

		ctx = context.WithValue(ctx, values.ContextTracingKey, tracingContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// RequireUser resolves the calling user from the X-User-Id header.
// Authentication itself is handled upstream; this layer only needs a
// stable owner id for reminders and trigger registration.
func (api *API) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(values.HeaderUserID)
		if userID == "" {
			writeErrorResponse(w, errors.New("missing user header"), values.NotAuthorised, "not-authorized")
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			writeErrorResponse(w, err, values.NotAuthorised, "invalid user id")
			return
		}

		ctx := context.WithValue(r.Context(), values.ContextUserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
