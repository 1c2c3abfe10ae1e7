package models

import "time"

type InventoryLogType string

const (
	InventoryLogAdd        InventoryLogType = "add"
	InventoryLogRemove     InventoryLogType = "remove"
	InventoryLogAdjustment InventoryLogType = "adjustment"
	InventoryLogReturn     InventoryLogType = "return"
	InventoryLogRelease    InventoryLogType = "release" // stock returned by a cancelled order
)

// InventoryLog is an append-only audit trail. Variant stock is updated in
// the same transaction as each entry so the two never drift apart.
type InventoryLog struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	VariantID uint             `gorm:"index" json:"variant_id"`
	Type      InventoryLogType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Quantity  int              `gorm:"not null" json:"quantity"`
	Note      string           `json:"note,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
