package services

import (
	"errors"
	"fmt"

	"api/models"

	"gorm.io/gorm"
)

// ActivateCompetition makes the target competition the single active one.
// Deactivating the currently active competition and activating the new one
// happen in the same transaction, so two competitions can never be active at
// once.
func ActivateCompetition(db *gorm.DB, competitionID string) (*models.Competition, error) {
	var competition models.Competition
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&competition, "id = ?", competitionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
		if competition.Status == models.CompetitionCompleted {
			return ErrInvalidState
		}
		if competition.Status == models.CompetitionActive {
			return nil
		}

		err := tx.Model(&models.Competition{}).
			Where("status = ? AND id <> ?", models.CompetitionActive, competitionID).
			Update("status", models.CompetitionInactive).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}

		competition.Status = models.CompetitionActive
		return tx.Model(&competition).Update("status", models.CompetitionActive).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidState) || errors.Is(err, ErrPersistenceFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return &competition, nil
}

// DeactivateCompetition takes an active competition offline
func DeactivateCompetition(db *gorm.DB, competitionID string) (*models.Competition, error) {
	return transitionCompetition(db, competitionID, models.CompetitionActive, models.CompetitionInactive)
}

// CompleteCompetition marks a competition as finished; completion is terminal
func CompleteCompetition(db *gorm.DB, competitionID string) (*models.Competition, error) {
	return transitionCompetition(db, competitionID, models.CompetitionActive, models.CompetitionCompleted)
}

func transitionCompetition(db *gorm.DB, competitionID, from, to string) (*models.Competition, error) {
	var competition models.Competition
	if err := db.First(&competition, "id = ?", competitionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if competition.Status != from {
		return nil, ErrInvalidState
	}

	competition.Status = to
	if err := db.Model(&competition).Update("status", to).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return &competition, nil
}

// GetActiveCompetition returns the single active competition, or nil when none is active
func GetActiveCompetition(db *gorm.DB) (*models.Competition, error) {
	var competition models.Competition
	err := db.Preload("Categories").Where("status = ?", models.CompetitionActive).First(&competition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return &competition, nil
}

// CompetitionExists reports whether a competition with this id exists
func CompetitionExists(db *gorm.DB, competitionID string) bool {
	var count int64
	db.Model(&models.Competition{}).Where("id = ?", competitionID).Count(&count)
	return count > 0
}
