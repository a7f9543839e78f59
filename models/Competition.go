package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Competition statuses
const (
    CompetitionDraft     = "draft"
    CompetitionActive    = "active"
    CompetitionInactive  = "inactive"
    CompetitionCompleted = "completed"
)

// Competition represents a photo competition with themed categories users can submit to
type Competition struct {
    ID          string      `gorm:"type:uuid;primary_key" json:"id"`
    Title       string      `gorm:"type:varchar(100);not null" json:"title"`
    Description string      `gorm:"type:varchar(500)" json:"description"`
    StartDate   *time.Time  `gorm:"type:timestamp;column:start_date" json:"start_date"`
    EndDate     *time.Time  `gorm:"type:timestamp;column:end_date" json:"end_date"`
    Status      string      `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
    CreatedAt   time.Time   `json:"created_at"`
    UpdatedAt   time.Time   `json:"updated_at"`
    Categories  []*Category `gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
    Photos      []*Photo    `gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Competition) BeforeCreate(tx *gorm.DB) error {
    if c.ID == "" {
        c.ID = uuid.NewString()
    }
    return nil
}
