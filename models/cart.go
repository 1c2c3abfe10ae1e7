package models

import "time"

// CartItem holds one variant in an owner's cart. At most one row exists per
// (owner, variant); repeated adds increment Quantity instead of duplicating.
type CartItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Owner     Owner          `gorm:"embedded" json:"owner"`
	VariantID uint           `gorm:"index" json:"variant_id"`
	Variant   ProductVariant `gorm:"foreignKey:VariantID" json:"variant"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice float64        `json:"unit_price"` // variant sale price frozen at add time
	AddedAt   time.Time      `json:"added_at"`
}
