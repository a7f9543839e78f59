package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"api/config"
	"api/models"

	"gorm.io/gorm"
)

func votingFixture(t *testing.T) (*gorm.DB, *models.User, []*models.Photo) {
	t.Helper()

	db := newTestDB(t)
	voter := createTestUser(t, db, "voter@example.com")
	owner := createTestUser(t, db, "owner@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 10)

	photos := make([]*models.Photo, 0, 5)
	for i := 0; i < 5; i++ {
		photo := createTestPhoto(t, db, owner.ID, competition.ID, category.ID,
			fmt.Sprintf("Photo %d", i), models.PhotoApproved)
		photos = append(photos, photo)
	}
	return db, voter, photos
}

func TestVotePhoto(t *testing.T) {
	db, voter, photos := votingFixture(t)

	vote, err := VotePhoto(db, voter.ID, photos[0].ID)
	if err != nil {
		t.Fatalf("VotePhoto: %v", err)
	}
	if vote.PhotoID != photos[0].ID {
		t.Errorf("vote photo = %q, want %q", vote.PhotoID, photos[0].ID)
	}

	count, err := GetPhotoVoteCount(db, photos[0].ID)
	if err != nil {
		t.Fatalf("GetPhotoVoteCount: %v", err)
	}
	if count != 1 {
		t.Errorf("vote count = %d, want 1", count)
	}
}

func TestVotePhotoRejectsSecondVoteOnSamePhoto(t *testing.T) {
	db, voter, photos := votingFixture(t)

	if _, err := VotePhoto(db, voter.ID, photos[0].ID); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if _, err := VotePhoto(db, voter.ID, photos[0].ID); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("second vote: got %v, want ErrAlreadyVoted", err)
	}
}

func TestVotePhotoEnforcesCompetitionCap(t *testing.T) {
	db, voter, photos := votingFixture(t)

	for i := 0; i < 3; i++ {
		if _, err := VotePhoto(db, voter.ID, photos[i].ID); err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
	}

	if _, err := VotePhoto(db, voter.ID, photos[3].ID); !errors.Is(err, ErrVoteLimitReached) {
		t.Fatalf("fourth vote: got %v, want ErrVoteLimitReached", err)
	}

	// Withdrawing a vote frees a slot
	if err := UnvotePhoto(db, voter.ID, photos[0].ID); err != nil {
		t.Fatalf("unvote: %v", err)
	}
	if _, err := VotePhoto(db, voter.ID, photos[3].ID); err != nil {
		t.Fatalf("vote after freeing a slot: %v", err)
	}
}

func TestVotePhotoConcurrentVotesHoldCap(t *testing.T) {
	db, voter, photos := votingFixture(t)

	var wg sync.WaitGroup
	for _, photo := range photos {
		wg.Add(1)
		go func(photoID string) {
			defer wg.Done()
			VotePhoto(db, voter.ID, photoID)
		}(photo.ID)
	}
	wg.Wait()

	votes, err := GetUserVotes(db, voter.ID)
	if err != nil {
		t.Fatalf("GetUserVotes: %v", err)
	}
	if len(votes) > config.MaxVotesPerCompetition {
		t.Errorf("holds %d votes, want at most %d", len(votes), config.MaxVotesPerCompetition)
	}
}

func TestVotePhotoOnlyApprovedPhotos(t *testing.T) {
	db := newTestDB(t)
	voter := createTestUser(t, db, "voter@example.com")
	owner := createTestUser(t, db, "owner@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 10)

	for _, status := range []string{models.PhotoPending, models.PhotoRejected, models.PhotoDeleted} {
		photo := createTestPhoto(t, db, owner.ID, competition.ID, category.ID, "Photo "+status, status)
		if _, err := VotePhoto(db, voter.ID, photo.ID); !errors.Is(err, ErrForbidden) {
			t.Errorf("vote on %s photo: got %v, want ErrForbidden", status, err)
		}
	}

	if _, err := VotePhoto(db, voter.ID, "no-such-photo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("vote on unknown photo: got %v, want ErrNotFound", err)
	}
}

func TestUnvotePhotoWithoutVote(t *testing.T) {
	db, voter, photos := votingFixture(t)

	if err := UnvotePhoto(db, voter.ID, photos[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unvote without vote: got %v, want ErrNotFound", err)
	}
}

func TestGetVoteCountsZeroFillsUnvotedPhotos(t *testing.T) {
	db, voter, photos := votingFixture(t)

	if _, err := VotePhoto(db, voter.ID, photos[0].ID); err != nil {
		t.Fatalf("vote: %v", err)
	}

	counts, err := GetVoteCounts(db, []string{photos[0].ID, photos[1].ID})
	if err != nil {
		t.Fatalf("GetVoteCounts: %v", err)
	}
	if counts[photos[0].ID] != 1 {
		t.Errorf("count[0] = %d, want 1", counts[photos[0].ID])
	}
	if got, ok := counts[photos[1].ID]; !ok || got != 0 {
		t.Errorf("count[1] = %d (present %v), want 0 with presence", got, ok)
	}
}

func TestGetUserVotes(t *testing.T) {
	db, voter, photos := votingFixture(t)

	for i := 0; i < 2; i++ {
		if _, err := VotePhoto(db, voter.ID, photos[i].ID); err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
	}

	votes, err := GetUserVotes(db, voter.ID)
	if err != nil {
		t.Fatalf("GetUserVotes: %v", err)
	}
	if len(votes) != 2 {
		t.Errorf("votes = %d, want 2", len(votes))
	}
}

func TestGetCategoryVote(t *testing.T) {
	db, voter, photos := votingFixture(t)

	vote, err := GetCategoryVote(db, voter.ID, photos[0].CategoryID)
	if err != nil {
		t.Fatalf("GetCategoryVote: %v", err)
	}
	if vote != nil {
		t.Fatalf("expected no vote, got %+v", vote)
	}

	if _, err := VotePhoto(db, voter.ID, photos[0].ID); err != nil {
		t.Fatalf("vote: %v", err)
	}

	vote, err = GetCategoryVote(db, voter.ID, photos[0].CategoryID)
	if err != nil {
		t.Fatalf("GetCategoryVote: %v", err)
	}
	if vote == nil || vote.PhotoID != photos[0].ID {
		t.Errorf("got %+v, want vote on %q", vote, photos[0].ID)
	}
}
