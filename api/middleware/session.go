package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tcgperu/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

type sessionCtxKey struct{}

// Session resolves the caller's cart session: an incoming X-Session-Id
// is reused, otherwise a fresh id is minted. The id is echoed back so
// the client can carry it on subsequent requests.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSessionID stores the session id on the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sessionID)
}

// SessionIDFromContext returns the resolved session id, or empty when
// the middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionCtxKey{}).(string); ok {
		return sessionID
	}
	return ""
}
