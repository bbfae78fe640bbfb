package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/motherproperties/website-backend/config"
)

// SecurityHeadersMiddleware adds security-related HTTP headers to all responses.
// These headers help protect against common web vulnerabilities like clickjacking,
// XSS attacks, and MIME type sniffing.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevents the API responses from being embedded in frames
		c.Header("X-Frame-Options", "DENY")

		// Forces browsers to respect the declared Content-Type
		c.Header("X-Content-Type-Options", "nosniff")

		// Enables the browser's built-in XSS filter (legacy browsers)
		c.Header("X-XSS-Protection", "1; mode=block")

		// Controls how much referrer information is sent with requests
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Strict-Transport-Security only in production to avoid issues
		// during local development
		if cfg.IsProduction() {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
