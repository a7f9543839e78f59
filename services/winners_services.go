package services

import (
	"errors"
	"fmt"

	"api/models"

	"gorm.io/gorm"
)

// SelectWinner awards a podium place to an approved photo of the category.
// Re-selecting an already awarded place replaces the previous pick inside one
// transaction, keeping (category, place) unique.
func SelectWinner(db *gorm.DB, categoryID, photoID, place, selectedBy string) (*models.Winner, error) {
	if place != models.PlaceFirst && place != models.PlaceSecond && place != models.PlaceThird {
		return nil, &ValidationError{Fields: map[string]string{"place": "place must be first, second or third"}}
	}

	var photo models.Photo
	if err := db.First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if photo.CategoryID != categoryID {
		return nil, &ValidationError{Fields: map[string]string{"photo_id": "photo does not belong to this category"}}
	}
	if photo.Status != models.PhotoApproved {
		return nil, ErrInvalidState
	}

	winner := &models.Winner{
		PhotoID:    photoID,
		CategoryID: categoryID,
		Place:      place,
		SelectedBy: selectedBy,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ? AND place = ?", categoryID, place).Delete(&models.Winner{}).Error; err != nil {
			return err
		}
		return tx.Create(winner).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return winner, nil
}

// ListCompetitionWinners returns the winners of every category of a competition
func ListCompetitionWinners(db *gorm.DB, competitionID string) ([]models.Winner, error) {
	var winners []models.Winner
	err := db.Preload("Photo").Preload("Photo.User").Preload("Category").
		Joins("JOIN categories ON categories.id = winners.category_id").
		Where("categories.competition_id = ?", competitionID).
		Order("categories.name, winners.place").
		Find(&winners).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return winners, nil
}
