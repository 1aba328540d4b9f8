package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the storefront's allowed origin
// policy. Origins come from configuration so the deployed frontends do
// not live in code.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session-Id", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Session-Id", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
