package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// preflightMaxAge is how long browsers may cache a preflight, in seconds
const preflightMaxAge = 300

// CORS allows the listed front-end origins to call the API with the auth
// cookie and to read the download file name of reports.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           preflightMaxAge,
	})
}
