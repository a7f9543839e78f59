package models

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"
)

// Role names known to the platform
const (
    RoleUser       = "user"
    RoleAdmin      = "admin"
    RoleSuperAdmin = "superadmin"
)

// User represents a registered account that can submit photos and vote
type User struct {
    ID            string     `gorm:"type:uuid;primary_key" json:"id"`
    Firstname     string     `gorm:"type:varchar(100);not null" json:"firstname"`
    Lastname      string     `gorm:"type:varchar(100);not null" json:"lastname"`
    Email         string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
    Password      string     `gorm:"type:varchar(255);not null" json:"password,omitempty"`
    EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
    Blocked       bool       `gorm:"not null;default:false" json:"blocked"`
    LastConnected *time.Time `gorm:"type:timestamp;column:last_connected" json:"last_connected"`
    CreatedAt     time.Time  `json:"created_at"`
    UpdatedAt     time.Time  `json:"updated_at"`
    Roles         []*Role    `gorm:"many2many:user_roles;" json:"roles"`
    Photos        []*Photo   `gorm:"foreignKey:UserID" json:"-"`
}

// Role represents a named role granted to users
type Role struct {
    ID    string  `gorm:"type:uuid;primary_key" json:"id"`
    Name  string  `gorm:"type:varchar(20);not null;uniqueIndex" json:"name"`
    Users []*User `gorm:"many2many:user_roles;" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
    if u.ID == "" {
        u.ID = uuid.NewString()
    }
    return nil
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
    if r.ID == "" {
        r.ID = uuid.NewString()
    }
    return nil
}

// HasRole reports whether the user has been granted the named role
func (u *User) HasRole(name string) bool {
    for _, role := range u.Roles {
        if role.Name == name {
            return true
        }
    }
    return false
}

// IsAdmin reports whether the user holds the admin or superadmin role
func (u *User) IsAdmin() bool {
    return u.HasRole(RoleAdmin) || u.HasRole(RoleSuperAdmin)
}
