package models

import "time"

// PushSubscription keeps the browser push endpoint an owner registered.
// Delivery is handled by the serving layer; this is bookkeeping only.
type PushSubscription struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Owner     Owner  `gorm:"embedded" json:"owner"`
	Endpoint  string `gorm:"uniqueIndex;not null" json:"endpoint"`
	P256dh    string `json:"p256dh"`
	Auth      string `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}
