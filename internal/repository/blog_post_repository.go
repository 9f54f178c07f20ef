package repository

import (
	"fmt"

	"gorm.io/gorm"

	"petkey/internal/models"
	"petkey/internal/utils"
)

// BlogPostFilter narrows list queries; zero values mean "no filter".
type BlogPostFilter struct {
	PublishedOnly bool
	Category      string
	Tag           string
	AuthorID      uint
	Search        string
}

type BlogPostRepository interface {
	Create(post *models.BlogPost) error
	FindAll(filter BlogPostFilter) ([]models.BlogPost, error)
	FindBySlug(slug string, publishedOnly bool) (*models.BlogPost, error)
	IncrementViews(id uint) error
	Update(post *models.BlogPost) error
	Delete(slug string) error
	FindFeatured(limit int) ([]models.BlogPost, error)
	DistinctCategories() ([]string, error)
}

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

// Create derives the slug from the title once; it never changes afterwards.
func (r *blogPostRepository) Create(post *models.BlogPost) error {
	if post.Slug == "" {
		base := utils.Slugify(post.Title)
		slug := base
		for counter := 1; ; counter++ {
			var count int64
			if err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				break
			}
			slug = fmt.Sprintf("%s-%d", base, counter)
		}
		post.Slug = slug
	}
	return r.db.Create(post).Error
}

func (r *blogPostRepository) FindAll(filter BlogPostFilter) ([]models.BlogPost, error) {
	query := r.db.Preload("Author")

	if filter.PublishedOnly {
		query = query.Where("status = ?", models.BlogStatusPublished)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("tags ILIKE ?", "%"+filter.Tag+"%")
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR content ILIKE ? OR excerpt ILIKE ? OR tags ILIKE ? OR category ILIKE ?",
			like, like, like, like, like,
		)
	}

	var posts []models.BlogPost
	err := query.Order("published_at DESC NULLS LAST, created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *blogPostRepository) FindBySlug(slug string, publishedOnly bool) (*models.BlogPost, error) {
	query := r.db.Preload("Author").Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", models.BlogStatusPublished)
	}
	var post models.BlogPost
	if err := query.First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the counter atomically; it is the only write path
// that touches views.
func (r *blogPostRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *blogPostRepository) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogPostRepository) Delete(slug string) error {
	return r.db.Where("slug = ?", slug).Delete(&models.BlogPost{}).Error
}

func (r *blogPostRepository) FindFeatured(limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Preload("Author").
		Where("status = ?", models.BlogStatusPublished).
		Order("views DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *blogPostRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.BlogPost{}).
		Where("status = ?", models.BlogStatusPublished).
		Distinct("category").Pluck("category", &categories).Error
	return categories, err
}
