package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Vote represents a user's endorsement of an approved photo
type Vote struct {
    ID        string    `gorm:"type:uuid;primary_key" json:"id"`
    UserID    string    `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_votes_user_photo" json:"user_id"`
    PhotoID   string    `gorm:"type:uuid;not null;column:photo_id;uniqueIndex:idx_votes_user_photo" json:"photo_id"`
    CreatedAt time.Time `json:"created_at"`
    User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
    Photo     *Photo    `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
    if v.ID == "" {
        v.ID = uuid.NewString()
    }
    return nil
}
