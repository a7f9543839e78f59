package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Category represents a themed category inside a competition
type Category struct {
    ID               string       `gorm:"type:uuid;primary_key" json:"id"`
    CompetitionID    string       `gorm:"type:uuid;not null;column:competition_id;uniqueIndex:idx_categories_competition_name" json:"competition_id"`
    Name             string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_competition_name" json:"name"`
    MaxPhotosPerUser int          `gorm:"type:integer;not null;column:max_photos_per_user" json:"max_photos_per_user"`
    CreatedAt        time.Time    `json:"created_at"`
    UpdatedAt        time.Time    `json:"updated_at"`
    Competition      *Competition `gorm:"foreignKey:CompetitionID" json:"competition,omitempty"`
    Photos           []*Photo     `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
    if c.ID == "" {
        c.ID = uuid.NewString()
    }
    return nil
}
