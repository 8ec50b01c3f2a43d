package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening middleware applied to every endpoint.
type SecurityConfig struct {
	// EnableCORS switches cross-origin response headers on.
	EnableCORS bool
	// AllowedOrigins lists the origins granted cross-origin access. The
	// wildcard "*" grants access to every origin.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised in preflight responses.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used when the embedding
// application does not supply one. The endpoints are read-only, so only GET
// and the preflight OPTIONS are advertised.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// corsOrigin resolves the Access-Control-Allow-Origin value for a request
// origin. The wildcard matches any request, including those without an Origin
// header. A concrete entry matches only the identical, non-empty origin.
func corsOrigin(allowed []string, origin string) (string, bool) {
	for _, a := range allowed {
		if a == "*" {
			return "*", true
		}
		if origin != "" && a == origin {
			return origin, true
		}
	}
	return "", false
}

// SecurityMiddleware wraps next with response hardening headers and, when
// enabled, CORS handling. Preflight OPTIONS requests are answered with
// 204 No Content without reaching next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := corsOrigin(config.AllowedOrigins, r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}
