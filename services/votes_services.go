package services

import (
	"errors"
	"fmt"

	"api/config"
	"api/metrics"
	"api/models"

	"gorm.io/gorm"
)

// Voting follows the competition-wide cap policy: a user holds at most
// config.MaxVotesPerCompetition concurrent votes inside one competition and
// never more than one vote on the same photo.

// VotePhoto records a vote on an approved photo
func VotePhoto(db *gorm.DB, userID, photoID string) (*models.Vote, error) {
	var photo models.Photo
	if err := db.First(&photo, "id = ?", photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if photo.Status != models.PhotoApproved {
		return nil, ErrForbidden
	}

	vote := &models.Vote{UserID: userID, PhotoID: photoID}
	err := db.Transaction(func(tx *gorm.DB) error {
		// The cap is counted, not constrained, so concurrent votes on the
		// same (user, competition) slot must serialize before re-counting
		if err := acquireSlotLock(tx, userID, photo.CompetitionID); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Vote{}).
			Where("user_id = ? AND photo_id = ?", userID, photoID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
		if existing > 0 {
			return ErrAlreadyVoted
		}

		var held int64
		err := tx.Model(&models.Vote{}).
			Joins("JOIN photos ON photos.id = votes.photo_id").
			Where("votes.user_id = ? AND photos.competition_id = ?", userID, photo.CompetitionID).
			Count(&held).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
		if held >= int64(config.MaxVotesPerCompetition) {
			return ErrVoteLimitReached
		}

		return tx.Create(vote).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyVoted) || errors.Is(err, ErrVoteLimitReached) || errors.Is(err, ErrPersistenceFailed) {
			return nil, err
		}
		if isUniqueViolation(err) {
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	metrics.Votes.WithLabelValues("vote").Inc()
	return vote, nil
}

// UnvotePhoto withdraws the caller's vote on a photo
func UnvotePhoto(db *gorm.DB, userID, photoID string) error {
	result := db.Where("user_id = ? AND photo_id = ?", userID, photoID).Delete(&models.Vote{})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	metrics.Votes.WithLabelValues("unvote").Inc()
	return nil
}

// GetPhotoVoteCount returns the number of votes a photo currently holds
func GetPhotoVoteCount(db *gorm.DB, photoID string) (int64, error) {
	var count int64
	if err := db.Model(&models.Vote{}).Where("photo_id = ?", photoID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return count, nil
}

// GetVoteCounts returns the vote count for each requested photo. Photos
// without votes are present in the result with a count of zero.
func GetVoteCounts(db *gorm.DB, photoIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(photoIDs))
	for _, id := range photoIDs {
		counts[id] = 0
	}
	if len(photoIDs) == 0 {
		return counts, nil
	}

	rows := []struct {
		PhotoID string
		Count   int64
	}{}
	err := db.Model(&models.Vote{}).
		Select("photo_id, COUNT(*) as count").
		Where("photo_id IN (?)", photoIDs).
		Group("photo_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	for _, row := range rows {
		counts[row.PhotoID] = row.Count
	}
	return counts, nil
}

// GetUserVotes returns all votes a user currently holds
func GetUserVotes(db *gorm.DB, userID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := db.Preload("Photo").Preload("Photo.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return votes, nil
}

// GetCategoryVote returns the user's vote inside a category, or nil when none exists
func GetCategoryVote(db *gorm.DB, userID, categoryID string) (*models.Vote, error) {
	var vote models.Vote
	err := db.Joins("JOIN photos ON photos.id = votes.photo_id").
		Where("votes.user_id = ? AND photos.category_id = ?", userID, categoryID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return &vote, nil
}
