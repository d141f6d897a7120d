package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets the response headers every API reply carries.
// hstsMaxAge > 0 adds Strict-Transport-Security; leave it zero when the API
// is served over plain HTTP behind no TLS terminator.
func SecurityHeaders(hstsMaxAge time.Duration) gin.HandlerFunc {
	hsts := ""
	if secs := int64(hstsMaxAge / time.Second); secs > 0 {
		hsts = "max-age=" + strconv.FormatInt(secs, 10) + "; includeSubDomains"
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		// responses are JSON or file downloads, nothing is ever rendered
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		// personnel data must not sit in shared caches
		h.Set("Cache-Control", "no-store")
		if hsts != "" {
			h.Set("Strict-Transport-Security", hsts)
		}

		c.Next()
	}
}
