package model

import "time"

// SessionRecord is the single durable row holding the operator's auth state.
// Token and UserID are written and cleared together; a row with either field
// empty is treated as no session.
type SessionRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UserID    string `gorm:"size:64;not null"`
	UpdatedAt time.Time
}
