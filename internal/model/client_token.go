package model

import "time"

// ClientToken is the bearer token a browser client signed in with. It plays
// the role of the browser's local storage entry and is removed on sign-out.
type ClientToken struct {
	ClientID  string     `gorm:"primarykey;size:64" json:"client_id"`
	UserID    string     `json:"user_id" gorm:"not null;index"`
	Token     string     `json:"-" gorm:"type:text;not null"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (t *ClientToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
