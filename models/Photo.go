package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Photo statuses
const (
    PhotoPending  = "pending"
    PhotoApproved = "approved"
    PhotoRejected = "rejected"
    PhotoDeleted  = "deleted"
)

// Photo represents a user's submission into a competition category
type Photo struct {
    ID              string       `gorm:"type:uuid;primary_key" json:"id"`
    UserID          string       `gorm:"type:uuid;not null;column:user_id;index" json:"user_id"`
    CompetitionID   string       `gorm:"type:uuid;not null;column:competition_id;index" json:"competition_id"`
    CategoryID      string       `gorm:"type:uuid;not null;column:category_id;index" json:"category_id"`
    Title           string       `gorm:"type:varchar(100);not null" json:"title"`
    Description     string       `gorm:"type:varchar(500);not null" json:"description"`
    DateTaken       *time.Time   `gorm:"type:timestamp;column:date_taken" json:"date_taken"`
    Location        string       `gorm:"type:varchar(100);not null" json:"location"`
    FilePath        string       `gorm:"type:varchar(255);column:file_path" json:"file_path"`
    FileName        string       `gorm:"type:varchar(255);column:file_name" json:"file_name"`
    FileSize        int64        `gorm:"type:bigint;column:file_size" json:"file_size"`
    MimeType        string       `gorm:"type:varchar(50);column:mime_type" json:"mime_type"`
    Width           int          `gorm:"type:integer" json:"width"`
    Height          int          `gorm:"type:integer" json:"height"`
    CameraMake      *string      `gorm:"type:varchar(100);column:camera_make" json:"camera_make"`
    CameraModel     *string      `gorm:"type:varchar(100);column:camera_model" json:"camera_model"`
    Lens            *string      `gorm:"type:varchar(100)" json:"lens"`
    FocalLength     *string      `gorm:"type:varchar(50);column:focal_length" json:"focal_length"`
    Aperture        *string      `gorm:"type:varchar(50)" json:"aperture"`
    ShutterSpeed    *string      `gorm:"type:varchar(50);column:shutter_speed" json:"shutter_speed"`
    ISO             *int         `gorm:"type:integer;column:iso" json:"iso"`
    Status          string       `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
    ModeratedBy     *string      `gorm:"type:uuid;column:moderated_by" json:"moderated_by"`
    ModeratedAt     *time.Time   `gorm:"type:timestamp;column:moderated_at" json:"moderated_at"`
    RejectionReason *string      `gorm:"type:varchar(500);column:rejection_reason" json:"rejection_reason"`
    CreatedAt       time.Time    `json:"created_at"`
    UpdatedAt       time.Time    `json:"updated_at"`
    User            *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
    Competition     *Competition `gorm:"foreignKey:CompetitionID" json:"competition,omitempty"`
    Category        *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
    Moderator       *User        `gorm:"foreignKey:ModeratedBy" json:"moderator,omitempty"`
    Votes           []*Vote      `gorm:"foreignKey:PhotoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
    if p.ID == "" {
        p.ID = uuid.NewString()
    }
    return nil
}
