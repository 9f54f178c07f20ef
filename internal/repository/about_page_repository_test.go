package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petkey/internal/models"
)

func TestAboutPageGetCreatesTheFixedRow(t *testing.T) {
	db := setupTestDB(t, &models.AboutPage{})
	repo := NewAboutPageRepository(db)

	page, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, page.ID)
	assert.Equal(t, "Hikayemiz", page.StoryTitle)

	// Repeated reads resolve to the same row instead of inserting again.
	again, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, again.ID)

	var count int64
	db.Model(&models.AboutPage{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAboutPageUpdateWritesTheFixedRow(t *testing.T) {
	db := setupTestDB(t, &models.AboutPage{})
	repo := NewAboutPageRepository(db)

	page, err := repo.Get()
	require.NoError(t, err)

	page.StoryTitle = "Yeni Hikayemiz"
	page.ID = 0 // Update pins the row regardless of the caller's ID
	require.NoError(t, repo.Update(page))

	found, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, found.ID)
	assert.Equal(t, "Yeni Hikayemiz", found.StoryTitle)

	var count int64
	db.Model(&models.AboutPage{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSiteSettingsGetAndUpdateShareTheFixedRow(t *testing.T) {
	db := setupTestDB(t, &models.SiteSettings{})
	repo := NewSiteSettingsRepository(db)

	settings, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, settings.ID)

	settings.SiteTitle = "PetKey Veteriner Kliniği"
	require.NoError(t, repo.Update(settings))

	found, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, models.SingletonID, found.ID)
	assert.Equal(t, "PetKey Veteriner Kliniği", found.SiteTitle)

	var count int64
	db.Model(&models.SiteSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
