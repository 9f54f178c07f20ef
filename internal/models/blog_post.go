package models

import (
	"time"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

type BlogPost struct {
	ID            uint          `gorm:"primaryKey" json:"id" example:"1"`
	AuthorID      uint          `gorm:"not null;index" json:"author" binding:"required"`
	Author        *Veterinarian `gorm:"foreignKey:AuthorID" json:"-"`
	AuthorName    string        `gorm:"-" json:"author_name"`
	Title         string        `gorm:"size:300;not null" json:"title" binding:"required"`
	Slug          string        `gorm:"size:300;uniqueIndex" json:"slug"`
	Excerpt       string        `gorm:"size:500" json:"excerpt"`
	Content       string        `gorm:"type:text" json:"content"`
	FeaturedImage string        `gorm:"type:text" json:"featured_image"`
	Category      string        `gorm:"size:100;default:Genel" json:"category"`
	Tags          string        `gorm:"size:500" json:"tags"`
	Status        string        `gorm:"size:20;default:draft" json:"status"`
	Views         int           `gorm:"default:0" json:"views"`
	PublishedAt   *time.Time    `json:"published_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BlogPostListItem is the reduced shape used by list endpoints; the post
// body is only sent on detail fetches.
type BlogPostListItem struct {
	ID            uint       `json:"id"`
	AuthorName    string     `json:"author_name"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	FeaturedImage string     `json:"featured_image"`
	Category      string     `json:"category"`
	Tags          string     `json:"tags"`
	Status        string     `json:"status"`
	Views         int        `json:"views"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (p *BlogPost) ListItem() BlogPostListItem {
	return BlogPostListItem{
		ID:            p.ID,
		AuthorName:    p.AuthorName,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		FeaturedImage: p.FeaturedImage,
		Category:      p.Category,
		Tags:          p.Tags,
		Status:        p.Status,
		Views:         p.Views,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
	}
}
