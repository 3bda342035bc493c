package middlewarex

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 600

// CORS lets any origin call the API with credentials. The origin is echoed
// back rather than answered with "*", which browsers reject for credentialed
// requests.
func CORS() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(*http.Request, string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{headerNameTraceID},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
