package model

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile caches the identity-provider profile last synced for a user.
type UserProfile struct {
	ID           uint           `gorm:"primarykey" json:"-"`
	ExternalID   string         `json:"external_id" gorm:"not null;uniqueIndex"`
	Email        string         `json:"email"`
	Name         string         `json:"name"`
	ProfileImage string         `json:"profile_image,omitempty"`
	SyncedAt     *time.Time     `json:"synced_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
