package services

import (
	"errors"
	"testing"

	"api/models"
)

func TestActivateCompetitionKeepsSingleActive(t *testing.T) {
	db := newTestDB(t)
	first := createTestCompetition(t, db, models.CompetitionActive)
	second := createTestCompetition(t, db, models.CompetitionDraft)

	activated, err := ActivateCompetition(db, second.ID)
	if err != nil {
		t.Fatalf("ActivateCompetition: %v", err)
	}
	if activated.Status != models.CompetitionActive {
		t.Errorf("status = %q, want active", activated.Status)
	}

	var reloaded models.Competition
	db.First(&reloaded, "id = ?", first.ID)
	if reloaded.Status != models.CompetitionInactive {
		t.Errorf("previous competition status = %q, want inactive", reloaded.Status)
	}

	var activeCount int64
	db.Model(&models.Competition{}).Where("status = ?", models.CompetitionActive).Count(&activeCount)
	if activeCount != 1 {
		t.Errorf("active competitions = %d, want 1", activeCount)
	}
}

func TestActivateCompetitionEdgeCases(t *testing.T) {
	db := newTestDB(t)
	completed := createTestCompetition(t, db, models.CompetitionCompleted)
	active := createTestCompetition(t, db, models.CompetitionActive)

	if _, err := ActivateCompetition(db, completed.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("activate completed: got %v, want ErrInvalidState", err)
	}
	if _, err := ActivateCompetition(db, "no-such-competition"); !errors.Is(err, ErrNotFound) {
		t.Errorf("activate unknown: got %v, want ErrNotFound", err)
	}

	// Re-activating the active competition is a no-op
	got, err := ActivateCompetition(db, active.ID)
	if err != nil {
		t.Fatalf("re-activate: %v", err)
	}
	if got.Status != models.CompetitionActive {
		t.Errorf("status = %q, want active", got.Status)
	}
}

func TestCompetitionLifecycleTransitions(t *testing.T) {
	db := newTestDB(t)
	competition := createTestCompetition(t, db, models.CompetitionActive)

	deactivated, err := DeactivateCompetition(db, competition.ID)
	if err != nil {
		t.Fatalf("DeactivateCompetition: %v", err)
	}
	if deactivated.Status != models.CompetitionInactive {
		t.Errorf("status = %q, want inactive", deactivated.Status)
	}

	// Completion requires an active competition
	if _, err := CompleteCompetition(db, competition.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("complete inactive: got %v, want ErrInvalidState", err)
	}

	if _, err := ActivateCompetition(db, competition.ID); err != nil {
		t.Fatalf("re-activate: %v", err)
	}
	completed, err := CompleteCompetition(db, competition.ID)
	if err != nil {
		t.Fatalf("CompleteCompetition: %v", err)
	}
	if completed.Status != models.CompetitionCompleted {
		t.Errorf("status = %q, want completed", completed.Status)
	}

	// Completion is terminal
	if _, err := ActivateCompetition(db, competition.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("activate completed: got %v, want ErrInvalidState", err)
	}
}

func TestGetActiveCompetition(t *testing.T) {
	db := newTestDB(t)

	active, err := GetActiveCompetition(db)
	if err != nil {
		t.Fatalf("GetActiveCompetition: %v", err)
	}
	if active != nil {
		t.Fatalf("expected nil without an active competition, got %+v", active)
	}

	competition := createTestCompetition(t, db, models.CompetitionActive)
	active, err = GetActiveCompetition(db)
	if err != nil {
		t.Fatalf("GetActiveCompetition: %v", err)
	}
	if active == nil || active.ID != competition.ID {
		t.Errorf("got %+v, want competition %q", active, competition.ID)
	}
}

func TestSelectWinner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner@example.com")
	admin := createTestUser(t, db, "admin@example.com")
	competition := createTestCompetition(t, db, models.CompetitionCompleted)
	category := createTestCategory(t, db, competition.ID, "Landscape", 10)
	approved := createTestPhoto(t, db, owner.ID, competition.ID, category.ID, "Winner", models.PhotoApproved)
	pending := createTestPhoto(t, db, owner.ID, competition.ID, category.ID, "Pending", models.PhotoPending)
	replacement := createTestPhoto(t, db, owner.ID, competition.ID, category.ID, "Replacement", models.PhotoApproved)

	winner, err := SelectWinner(db, category.ID, approved.ID, models.PlaceFirst, admin.ID)
	if err != nil {
		t.Fatalf("SelectWinner: %v", err)
	}
	if winner.Place != models.PlaceFirst {
		t.Errorf("place = %q, want first", winner.Place)
	}

	if _, err := SelectWinner(db, category.ID, pending.ID, models.PlaceSecond, admin.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("select pending photo: got %v, want ErrInvalidState", err)
	}

	var verr *ValidationError
	if _, err := SelectWinner(db, category.ID, approved.ID, "fourth", admin.ID); !errors.As(err, &verr) {
		t.Errorf("invalid place: got %v, want ValidationError", err)
	}

	// Re-selecting a place replaces the previous pick
	if _, err := SelectWinner(db, category.ID, replacement.ID, models.PlaceFirst, admin.ID); err != nil {
		t.Fatalf("replace winner: %v", err)
	}

	winners, err := ListCompetitionWinners(db, competition.ID)
	if err != nil {
		t.Fatalf("ListCompetitionWinners: %v", err)
	}
	if len(winners) != 1 {
		t.Fatalf("winners = %d, want 1", len(winners))
	}
	if winners[0].PhotoID != replacement.ID {
		t.Errorf("first place photo = %q, want the replacement", winners[0].PhotoID)
	}
}
