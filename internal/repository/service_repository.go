package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"petkey/internal/models"
	"petkey/internal/utils"
)

const (
	serviceCacheKeyPrefix  = "service:"
	allServicesCacheKey    = "services:all"
	activeServicesCacheKey = "services:active"
	serviceCacheExpiration = 30 * time.Minute
)

type ServiceRepository interface {
	Create(service *models.Service) error
	FindAll(activeOnly bool) ([]models.Service, error)
	FindBySlug(slug string) (*models.Service, error)
	Update(service *models.Service) error
	Delete(slug string) error
	InvalidateCache(slug string) error
	InvalidateListCache() error
}

type serviceRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func serviceCacheKey(slug string) string {
	return fmt.Sprintf("%s%s", serviceCacheKeyPrefix, slug)
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{
		db:    db,
		redis: nil,
		ctx:   context.Background(),
	}
}

func NewCachedServiceRepository(db *gorm.DB, redisClient *redis.Client) ServiceRepository {
	return &serviceRepository{
		db:    db,
		redis: redisClient,
		ctx:   context.Background(),
	}
}

func (r *serviceRepository) Create(service *models.Service) error {
	if service.Slug == "" {
		service.Slug = r.uniqueSlug(utils.Slugify(service.Title))
	}
	if err := r.db.Create(service).Error; err != nil {
		return err
	}
	_ = r.InvalidateListCache()
	return nil
}

func (r *serviceRepository) uniqueSlug(base string) string {
	slug := base
	for i := 1; ; i++ {
		var count int64
		r.db.Model(&models.Service{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (r *serviceRepository) FindAll(activeOnly bool) ([]models.Service, error) {
	cacheKey := allServicesCacheKey
	if activeOnly {
		cacheKey = activeServicesCacheKey
	}

	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, cacheKey).Result()
		if err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(cachedData), &services); err == nil {
				return services, nil
			}
		}
	}

	query := r.db.Session(&gorm.Session{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := query.Order("display_order, title").Find(&services).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		servicesJSON, err := json.Marshal(services)
		if err == nil {
			if err := r.redis.Set(r.ctx, cacheKey, servicesJSON, serviceCacheExpiration).Err(); err != nil {
				log.WithError(err).Warn("Failed to cache service list")
			}
		}
	}

	return services, nil
}

func (r *serviceRepository) FindBySlug(slug string) (*models.Service, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, serviceCacheKey(slug)).Result()
		if err == nil {
			var service models.Service
			if err := json.Unmarshal([]byte(cachedData), &service); err == nil {
				return &service, nil
			}
		}
	}

	var service models.Service
	if err := r.db.Where("slug = ?", slug).First(&service).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		serviceJSON, err := json.Marshal(service)
		if err == nil {
			if err := r.redis.Set(r.ctx, serviceCacheKey(slug), serviceJSON, serviceCacheExpiration).Err(); err != nil {
				log.WithError(err).WithField("slug", slug).Warn("Failed to cache service")
			}
		}
	}

	return &service, nil
}

func (r *serviceRepository) Update(service *models.Service) error {
	if err := r.db.Save(service).Error; err != nil {
		return err
	}
	_ = r.InvalidateCache(service.Slug)
	_ = r.InvalidateListCache()
	return nil
}

func (r *serviceRepository) Delete(slug string) error {
	result := r.db.Where("slug = ?", slug).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	_ = r.InvalidateCache(slug)
	_ = r.InvalidateListCache()
	return nil
}

func (r *serviceRepository) InvalidateCache(slug string) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, serviceCacheKey(slug)).Err()
}

func (r *serviceRepository) InvalidateListCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, allServicesCacheKey, activeServicesCacheKey).Err()
}
