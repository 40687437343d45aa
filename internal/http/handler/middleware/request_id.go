package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey contextKey = "request_id"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// RequestID picks up the X-Request-ID header or mints a new id, stores it in
// the request context and echoes it back on the response.
func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-ID")
		if requestId == "" {
			requestId = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		w.Header().Set("X-Request-ID", requestId)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
