package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/postboard/postboard-backend/config"
)

// apiContentSecurityPolicy forbids every subresource. JSON responses need none.
const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeadersMiddleware sets hardening headers on every response. The swagger UI is
// exempt from the content security policy since it loads its own scripts and styles.
func SecurityHeadersMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	production := cfg.Environment == config.EnvProduction

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if !strings.HasPrefix(c.Request.URL.Path, "/swagger/") {
			h.Set("Content-Security-Policy", apiContentSecurityPolicy)
		}

		// HSTS only behind real TLS
		if production {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
