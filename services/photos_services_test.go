package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"api/models"
	"api/storage"

	"gorm.io/gorm"
)

func TestSubmitPhotoAdmitsValidSubmission(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	photo, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Harbor at dusk"))
	if err != nil {
		t.Fatalf("SubmitPhoto: %v", err)
	}

	if photo.Status != models.PhotoPending {
		t.Errorf("status = %q, want %q", photo.Status, models.PhotoPending)
	}
	if photo.Width != 800 || photo.Height != 600 {
		t.Errorf("dimensions = %dx%d, want probed 800x600", photo.Width, photo.Height)
	}
	if photo.FilePath == "" {
		t.Fatal("expected a file path on the admitted photo")
	}
	if _, err := store.Get(context.Background(), photo.FilePath); err != nil {
		t.Errorf("blob missing for admitted photo: %v", err)
	}

	var count int64
	db.Model(&models.Photo{}).Where("id = ?", photo.ID).Count(&count)
	if count != 1 {
		t.Errorf("photo rows = %d, want 1", count)
	}
}

func TestSubmitPhotoCollectsAllValidationErrors(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	in := SubmissionInput{
		Title:       "ab", // too short
		Description: "too short",
		Location:    "X",
		FileName:    "small.png",
		MimeType:    "image/gif",
		FileData:    pngBytes(t, 200, 100),
	}

	_, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	for _, field := range []string{"title", "description", "location", "mime_type", "dimensions"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing validation error for %q, got %v", field, verr.Fields)
		}
	}
	if store.Len() != 0 {
		t.Errorf("rejected submission wrote %d blobs, want 0", store.Len())
	}
}

func TestSubmitPhotoRejectsOversizedFile(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	in := validSubmission(t, "Oversized")
	in.FileData = make([]byte, 15*1024*1024)

	_, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["file_size"]; !ok {
		t.Errorf("missing file_size error, got %v", verr.Fields)
	}
	if store.Len() != 0 {
		t.Errorf("rejected submission wrote %d blobs, want 0", store.Len())
	}
}

func TestSubmitPhotoEnforcesQuota(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 1)

	if _, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "First")); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	_, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Second"))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d blobs, want only the admitted one", store.Len())
	}
}

func TestSubmitPhotoQuotaIgnoresWithdrawnPhotos(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 1)

	first, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "First"))
	if err != nil {
		t.Fatalf("first submission: %v", err)
	}
	if err := WithdrawPhoto(db, first.ID, user.ID); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if _, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Second")); err != nil {
		t.Fatalf("submission after withdrawal should free the quota slot: %v", err)
	}
}

func TestSubmitPhotoRejectsDuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	if _, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Harbor at dusk")); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	_, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Harbor at dusk"))
	if !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}

	// A different user may reuse the title
	other := createTestUser(t, db, "bob@example.com")
	if _, err := SubmitPhoto(context.Background(), db, store, other.ID, competition.ID, category.ID, validSubmission(t, "Harbor at dusk")); err != nil {
		t.Fatalf("other user with same title: %v", err)
	}
}

func TestSubmitPhotoUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)

	_, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, "no-such-category", validSubmission(t, "Lost"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("store holds %d blobs, want 0", store.Len())
	}
}

func TestSubmitPhotoConcurrentSubmissionsHoldQuota(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 2)

	inputs := make([]SubmissionInput, 6)
	for i := range inputs {
		inputs[i] = validSubmission(t, fmt.Sprintf("Contender %d", i))
	}

	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(in SubmissionInput) {
			defer wg.Done()
			SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, in)
		}(inputs[i])
	}
	wg.Wait()

	var count int64
	db.Model(&models.Photo{}).
		Where("user_id = ? AND category_id = ? AND status <> ?", user.ID, category.ID, models.PhotoDeleted).
		Count(&count)
	if count > 2 {
		t.Errorf("admitted %d photos, want at most the quota of 2", count)
	}
	if int64(store.Len()) != count {
		t.Errorf("store holds %d blobs for %d admitted photos", store.Len(), count)
	}
}

func TestSubmitPhotoStorageFailureLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	store.FailPut = errors.New("bucket unreachable")
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	_, err := SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Doomed"))
	if !errors.Is(err, ErrStorageWriteFailed) {
		t.Fatalf("expected ErrStorageWriteFailed, got %v", err)
	}

	var count int64
	db.Model(&models.Photo{}).Count(&count)
	if count != 0 {
		t.Errorf("photo rows = %d, want 0 after failed blob write", count)
	}
}

func TestSubmitPhotoCompensatesWhenInsertFails(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	// The blob write succeeds, then the row insert is rejected
	err := db.Callback().Create().Before("gorm:create").Register("reject_photo_insert", func(tx *gorm.DB) {
		if tx.Statement.Table == "photos" {
			tx.AddError(errors.New("insert rejected"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	defer db.Callback().Create().Remove("reject_photo_insert")

	_, err = SubmitPhoto(context.Background(), db, store, user.ID, competition.ID, category.ID, validSubmission(t, "Doomed"))
	if !errors.Is(err, ErrPersistenceFailed) {
		t.Fatalf("expected ErrPersistenceFailed, got %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("store holds %d blobs, want the orphan deleted by compensation", store.Len())
	}
	var count int64
	db.Model(&models.Photo{}).Count(&count)
	if count != 0 {
		t.Errorf("photo rows = %d, want 0", count)
	}
}

func TestUploadSagaCompensateDeletesBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	saga := &UploadSaga{
		Store:       store,
		Key:         "competitions/c1/photos/p1.png",
		Data:        []byte("blob"),
		ContentType: "image/png",
	}

	if err := saga.WriteBlob(context.Background()); err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("store holds %d blobs, want 1", store.Len())
	}

	saga.Compensate(context.Background())
	if store.Len() != 0 {
		t.Errorf("store holds %d blobs after compensation, want 0", store.Len())
	}

	// A second compensation must be a no-op
	saga.Compensate(context.Background())
}

func TestUploadSagaCompensateSurvivesDeleteFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	saga := &UploadSaga{
		Store:       store,
		Key:         "competitions/c1/photos/p1.png",
		Data:        []byte("blob"),
		ContentType: "image/png",
	}
	if err := saga.WriteBlob(context.Background()); err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}

	store.FailDelete = errors.New("bucket unreachable")
	saga.Compensate(context.Background())

	// The orphaned blob stays behind for the sweep
	if store.Len() != 1 {
		t.Errorf("store holds %d blobs, want the orphan to remain", store.Len())
	}
}

func TestSubmitPhotoBatchPartialFailure(t *testing.T) {
	db := newTestDB(t)
	store := storage.NewMemoryStore()
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)

	bad := validSubmission(t, "xx") // title too short
	items := []BatchItem{
		{CategoryID: category.ID, Input: validSubmission(t, "First")},
		{CategoryID: category.ID, Input: bad},
		{CategoryID: category.ID, Input: validSubmission(t, "Third")},
	}

	result := SubmitPhotoBatch(context.Background(), db, store, user.ID, competition.ID, items)

	if len(result.Submitted) != 2 {
		t.Fatalf("submitted = %d, want 2", len(result.Submitted))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %d, want 1", len(result.Errors))
	}
	if result.Errors[0].Index != 1 {
		t.Errorf("failed index = %d, want 1", result.Errors[0].Index)
	}
	if result.Errors[0].Code != "VALIDATION_ERROR" {
		t.Errorf("error code = %q, want VALIDATION_ERROR", result.Errors[0].Code)
	}
	if result.Errors[0].Fields["title"] == "" {
		t.Errorf("expected a title field error, got %v", result.Errors[0].Fields)
	}
}

func TestWithdrawPhoto(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	other := createTestUser(t, db, "bob@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)
	photo := createTestPhoto(t, db, user.ID, competition.ID, category.ID, "Mine", models.PhotoApproved)

	if err := WithdrawPhoto(db, photo.ID, other.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("withdraw by non-owner: got %v, want ErrForbidden", err)
	}

	if err := WithdrawPhoto(db, photo.ID, user.ID); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	var reloaded models.Photo
	db.First(&reloaded, "id = ?", photo.ID)
	if reloaded.Status != models.PhotoDeleted {
		t.Errorf("status = %q, want %q", reloaded.Status, models.PhotoDeleted)
	}

	if err := WithdrawPhoto(db, photo.ID, user.ID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second withdraw: got %v, want ErrInvalidState", err)
	}
	if err := WithdrawPhoto(db, "no-such-photo", user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("withdraw unknown photo: got %v, want ErrNotFound", err)
	}
}

func TestUpdatePhoto(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)
	photo := createTestPhoto(t, db, user.ID, competition.ID, category.ID, "Original title", models.PhotoPending)
	createTestPhoto(t, db, user.ID, competition.ID, category.ID, "Taken title", models.PhotoPending)

	newTitle := "Taken title"
	if _, err := UpdatePhoto(db, photo.ID, user.ID, PhotoPatch{Title: &newTitle}); !errors.Is(err, ErrDuplicateTitle) {
		t.Errorf("rename to taken title: got %v, want ErrDuplicateTitle", err)
	}

	freshTitle := "A fresh title"
	updated, err := UpdatePhoto(db, photo.ID, user.ID, PhotoPatch{Title: &freshTitle})
	if err != nil {
		t.Fatalf("UpdatePhoto: %v", err)
	}
	if updated.Title != freshTitle {
		t.Errorf("title = %q, want %q", updated.Title, freshTitle)
	}

	// Keeping the current title is not a duplicate of itself
	if _, err := UpdatePhoto(db, photo.ID, user.ID, PhotoPatch{Title: &freshTitle}); err != nil {
		t.Errorf("re-saving own title: %v", err)
	}

	shortTitle := "ab"
	var verr *ValidationError
	if _, err := UpdatePhoto(db, photo.ID, user.ID, PhotoPatch{Title: &shortTitle}); !errors.As(err, &verr) {
		t.Errorf("invalid patch: got %v, want ValidationError", err)
	}
}

func TestModeratePhotoStateMachine(t *testing.T) {
	reason := "blurry"

	tests := []struct {
		name       string
		fromStatus string
		action     string
		reason     *string
		wantStatus string
		wantErr    error
	}{
		{"approve pending", models.PhotoPending, ModerationApprove, nil, models.PhotoApproved, nil},
		{"reject pending", models.PhotoPending, ModerationReject, &reason, models.PhotoRejected, nil},
		{"approve approved", models.PhotoApproved, ModerationApprove, nil, "", ErrInvalidState},
		{"reject rejected", models.PhotoRejected, ModerationReject, &reason, "", ErrInvalidState},
		{"approve withdrawn", models.PhotoDeleted, ModerationApprove, nil, "", ErrInvalidState},
		{"reset approved", models.PhotoApproved, ModerationReset, nil, models.PhotoPending, nil},
		{"reset rejected", models.PhotoRejected, ModerationReset, nil, models.PhotoPending, nil},
		{"reset pending", models.PhotoPending, ModerationReset, nil, "", ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			user := createTestUser(t, db, "alice@example.com")
			moderator := createTestUser(t, db, "mod@example.com")
			competition := createTestCompetition(t, db, models.CompetitionActive)
			category := createTestCategory(t, db, competition.ID, "Landscape", 3)
			photo := createTestPhoto(t, db, user.ID, competition.ID, category.ID, "Subject", tt.fromStatus)

			got, err := ModeratePhoto(db, photo.ID, moderator.ID, tt.action, tt.reason)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ModeratePhoto: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}

			if tt.action == ModerationReset {
				var reloaded models.Photo
				db.First(&reloaded, "id = ?", photo.ID)
				if reloaded.ModeratedBy != nil || reloaded.ModeratedAt != nil || reloaded.RejectionReason != nil {
					t.Error("reset must clear the moderation fields")
				}
			}
		})
	}
}

func TestModeratePhotoRejectRequiresReason(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	moderator := createTestUser(t, db, "mod@example.com")
	competition := createTestCompetition(t, db, models.CompetitionActive)
	category := createTestCategory(t, db, competition.ID, "Landscape", 3)
	photo := createTestPhoto(t, db, user.ID, competition.ID, category.ID, "Subject", models.PhotoPending)

	var verr *ValidationError
	if _, err := ModeratePhoto(db, photo.ID, moderator.ID, ModerationReject, nil); !errors.As(err, &verr) {
		t.Fatalf("reject without reason: got %v, want ValidationError", err)
	}

	empty := ""
	if _, err := ModeratePhoto(db, photo.ID, moderator.ID, ModerationReject, &empty); !errors.As(err, &verr) {
		t.Fatalf("reject with empty reason: got %v, want ValidationError", err)
	}
}
