package services

import (
	"errors"
	"fmt"

	"api/models"

	"gorm.io/gorm"
)

// Pagination bounds a listing query
type Pagination struct {
	Limit  int
	Offset int
}

func (p Pagination) normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// GetPhotoByID loads a photo with its relations
func GetPhotoByID(db *gorm.DB, photoID string) (*models.Photo, error) {
	var photo models.Photo
	err := db.Preload("User").Preload("Category").Preload("Competition").Preload("Moderator").
		First(&photo, "id = ?", photoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return &photo, nil
}

// ListPhotosByCategory returns the approved photos of a category. Public
// listings never expose pending, rejected or deleted submissions.
func ListPhotosByCategory(db *gorm.DB, categoryID string, page Pagination) ([]models.Photo, error) {
	page = page.normalize()
	var photos []models.Photo
	err := db.Preload("User").
		Where("category_id = ? AND status = ?", categoryID, models.PhotoApproved).
		Order("created_at DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return photos, nil
}

// ListPhotosByCompetition returns the approved photos of a competition
func ListPhotosByCompetition(db *gorm.DB, competitionID string, page Pagination) ([]models.Photo, error) {
	page = page.normalize()
	var photos []models.Photo
	err := db.Preload("User").Preload("Category").
		Where("competition_id = ? AND status = ?", competitionID, models.PhotoApproved).
		Order("created_at DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return photos, nil
}

// ListPhotosForModeration returns pending photos, optionally scoped to one competition
func ListPhotosForModeration(db *gorm.DB, competitionID string, page Pagination) ([]models.Photo, error) {
	page = page.normalize()
	query := db.Preload("User").Preload("Category").Preload("Competition").
		Where("status = ?", models.PhotoPending)
	if competitionID != "" {
		query = query.Where("competition_id = ?", competitionID)
	}

	var photos []models.Photo
	err := query.Order("created_at ASC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return photos, nil
}

// ListUserSubmissions returns a user's own photos in any status, optionally filtered
func ListUserSubmissions(db *gorm.DB, userID, status string, page Pagination) ([]models.Photo, error) {
	page = page.normalize()
	query := db.Preload("Category").Preload("Competition").Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var photos []models.Photo
	err := query.Order("created_at DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return photos, nil
}

// ListAllPhotosForAdmin returns photos across all users for the admin
// dashboard. Deleted photos stay hidden even here.
func ListAllPhotosForAdmin(db *gorm.DB, status string, page Pagination) ([]models.Photo, error) {
	page = page.normalize()
	query := db.Preload("User").Preload("Category").Preload("Competition").Preload("Moderator").
		Where("status <> ?", models.PhotoDeleted)
	if status != "" && status != models.PhotoDeleted {
		query = query.Where("status = ?", status)
	}

	var photos []models.Photo
	err := query.Order("created_at DESC").
		Limit(page.Limit).Offset(page.Offset).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return photos, nil
}
