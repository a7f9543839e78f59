package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Report reasons
const (
    ReportInappropriate = "inappropriate"
    ReportCopyright     = "copyright"
    ReportSpam          = "spam"
    ReportOther         = "other"
)

// Report statuses
const (
    ReportPending   = "pending"
    ReportReviewed  = "reviewed"
    ReportResolved  = "resolved"
    ReportDismissed = "dismissed"
)

// Report represents a user's complaint about a photo, handled by moderators
type Report struct {
    ID          string     `gorm:"type:uuid;primary_key" json:"id"`
    UserID      string     `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
    PhotoID     string     `gorm:"type:uuid;not null;column:photo_id;index" json:"photo_id"`
    Reason      string     `gorm:"type:varchar(50);not null" json:"reason"`
    Description *string    `gorm:"type:varchar(500)" json:"description"`
    Status      string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
    ReviewedBy  *string    `gorm:"type:uuid;column:reviewed_by" json:"reviewed_by"`
    ReviewedAt  *time.Time `gorm:"type:timestamp;column:reviewed_at" json:"reviewed_at"`
    AdminNotes  *string    `gorm:"type:varchar(500);column:admin_notes" json:"admin_notes"`
    CreatedAt   time.Time  `json:"created_at"`
    UpdatedAt   time.Time  `json:"updated_at"`
    User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
    Photo       *Photo     `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
    Reviewer    *User      `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
    if r.ID == "" {
        r.ID = uuid.NewString()
    }
    return nil
}
