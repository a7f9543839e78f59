package services

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"testing"

	"api/database"
	"api/models"
	"api/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// The in-memory database lives and dies with a single connection
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	password, err := utils.HashPassword("secret-password")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Firstname: "Test",
		Lastname:  "User",
		Email:     email,
		Password:  password,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestCompetition(t *testing.T, db *gorm.DB, status string) *models.Competition {
	t.Helper()

	competition := &models.Competition{
		Title:  "Autumn Open",
		Status: status,
	}
	if err := db.Create(competition).Error; err != nil {
		t.Fatalf("create competition: %v", err)
	}
	return competition
}

func createTestCategory(t *testing.T, db *gorm.DB, competitionID, name string, maxPhotos int) *models.Category {
	t.Helper()

	category := &models.Category{
		CompetitionID:    competitionID,
		Name:             name,
		MaxPhotosPerUser: maxPhotos,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func createTestPhoto(t *testing.T, db *gorm.DB, userID, competitionID, categoryID, title, status string) *models.Photo {
	t.Helper()

	photo := &models.Photo{
		UserID:        userID,
		CompetitionID: competitionID,
		CategoryID:    categoryID,
		Title:         title,
		Description:   "A perfectly ordinary test photograph",
		Location:      "Testville",
		FileName:      "photo.png",
		FilePath:      fmt.Sprintf("competitions/%s/photos/%s.png", competitionID, title),
		MimeType:      "image/png",
		Width:         1024,
		Height:        768,
		Status:        status,
	}
	if err := db.Create(photo).Error; err != nil {
		t.Fatalf("create photo: %v", err)
	}
	return photo
}

// pngBytes renders a real PNG so the submission path exercises the image probe
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func validSubmission(t *testing.T, title string) SubmissionInput {
	t.Helper()

	return SubmissionInput{
		Title:       title,
		Description: "Golden light over the harbor just before the storm rolled in",
		Location:    "Lofoten",
		FileName:    "harbor.png",
		MimeType:    "image/png",
		FileData:    pngBytes(t, 800, 600),
	}
}
