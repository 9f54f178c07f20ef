package models

import (
	"time"
)

// SEOPageGlobal is the one row that also carries the site-wide fields.
const SEOPageGlobal = "global"

// SEOPages is the fixed set of page identifiers SEO settings are keyed by.
var SEOPages = []string{"homepage", "services", "blog", "about", "contact", SEOPageGlobal}

func IsValidSEOPage(page string) bool {
	for _, p := range SEOPages {
		if p == page {
			return true
		}
	}
	return false
}

type SEOSettings struct {
	ID       uint   `gorm:"primaryKey" json:"id" example:"1"`
	PageName string `gorm:"size:50;uniqueIndex;not null" json:"page_name" binding:"required"`

	Title       string `gorm:"size:70" json:"title"`
	Description string `gorm:"size:170" json:"description"`
	Keywords    string `gorm:"size:500" json:"keywords"`
	OgImage     string `gorm:"size:500;default:/og-image.jpg" json:"og_image"`
	Canonical   string `gorm:"size:500" json:"canonical"`

	// Site-wide fields, meaningful only on the global row.
	SiteName              string `gorm:"size:200" json:"site_name"`
	TwitterHandle         string `gorm:"size:100" json:"twitter_handle"`
	FacebookURL           string `gorm:"size:500" json:"facebook_url"`
	InstagramURL          string `gorm:"size:500" json:"instagram_url"`
	TwitterURL            string `gorm:"size:500" json:"twitter_url"`
	GoogleAnalyticsID     string `gorm:"size:100" json:"google_analytics_id"`
	GoogleSearchConsoleID string `gorm:"size:200" json:"google_search_console_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// External returns the camelCase shape the frontend consumes; the global row
// additionally exposes the site-wide fields.
func (s *SEOSettings) External() map[string]interface{} {
	out := map[string]interface{}{
		"title":       s.Title,
		"description": s.Description,
		"keywords":    s.Keywords,
		"ogImage":     s.OgImage,
		"canonical":   s.Canonical,
	}
	if s.PageName == SEOPageGlobal {
		out["siteName"] = s.SiteName
		out["twitterHandle"] = s.TwitterHandle
		out["facebookUrl"] = s.FacebookURL
		out["instagramUrl"] = s.InstagramURL
		out["twitterUrl"] = s.TwitterURL
		out["googleAnalyticsId"] = s.GoogleAnalyticsID
		out["googleSearchConsoleId"] = s.GoogleSearchConsoleID
	}
	return out
}

// ApplyExternal maps the frontend's camelCase field names onto the row.
// Keys absent from the payload leave the stored value untouched.
func (s *SEOSettings) ApplyExternal(in map[string]interface{}) {
	set := func(key string, dst *string) {
		if v, ok := in[key].(string); ok {
			*dst = v
		}
	}
	set("title", &s.Title)
	set("description", &s.Description)
	set("keywords", &s.Keywords)
	set("ogImage", &s.OgImage)
	set("canonical", &s.Canonical)
	if s.PageName == SEOPageGlobal {
		set("siteName", &s.SiteName)
		set("twitterHandle", &s.TwitterHandle)
		set("facebookUrl", &s.FacebookURL)
		set("instagramUrl", &s.InstagramURL)
		set("twitterUrl", &s.TwitterURL)
		set("googleAnalyticsId", &s.GoogleAnalyticsID)
		set("googleSearchConsoleId", &s.GoogleSearchConsoleID)
	}
}
