package models

import "time"

// WishlistItem is unique per (owner, product, variant). VariantID is nil when
// the shopper saved the product without picking a size.
type WishlistItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Owner     Owner   `gorm:"embedded" json:"owner"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	VariantID *uint   `json:"variant_id,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}
