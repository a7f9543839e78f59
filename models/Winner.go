package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Winner places
const (
    PlaceFirst  = "first"
    PlaceSecond = "second"
    PlaceThird  = "third"
)

// Winner represents a podium place awarded to a photo within a category
type Winner struct {
    ID         string    `gorm:"type:uuid;primary_key" json:"id"`
    PhotoID    string    `gorm:"type:uuid;not null;column:photo_id" json:"photo_id"`
    CategoryID string    `gorm:"type:uuid;not null;column:category_id;uniqueIndex:idx_winners_category_place" json:"category_id"`
    Place      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_winners_category_place" json:"place"`
    SelectedBy string    `gorm:"type:uuid;not null;column:selected_by" json:"selected_by"`
    CreatedAt  time.Time `json:"created_at"`
    Photo      *Photo    `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
    Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
    Selector   *User     `gorm:"foreignKey:SelectedBy" json:"selector,omitempty"`
}

func (w *Winner) BeforeCreate(tx *gorm.DB) error {
    if w.ID == "" {
        w.ID = uuid.NewString()
    }
    return nil
}
