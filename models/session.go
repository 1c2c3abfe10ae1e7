package models

import "time"

// GuestSession is the anonymous identity that owns cart/wishlist rows
// before login. Never mutated after creation except for MigratedAt.
type GuestSession struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	MigratedAt *time.Time `json:"migrated_at,omitempty"`
}
