package utils

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// SiteURL is the public origin used when no request context is available
// (sitemap generation, email links).
func SiteURL() string {
	if url := os.Getenv("SITE_URL"); url != "" {
		return strings.TrimRight(url, "/")
	}
	return "http://localhost:8000"
}

// RequestOrigin returns scheme://host of the current request, falling back
// to the configured site URL.
func RequestOrigin(c *gin.Context) string {
	if c == nil || c.Request == nil || c.Request.Host == "" {
		return SiteURL()
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// AbsoluteMediaURL expands a stored relative media path to an absolute URL.
// Values that are already absolute (external image URLs) pass through.
func AbsoluteMediaURL(c *gin.Context, path string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return path
	}
	return RequestOrigin(c) + path
}
