package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Brand       string
	Description string
	Image       string
	Categories  []Category       `gorm:"many2many:product_categories;"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// ProductVariant is the sellable unit (size/colour). Price and stock live
// here; cart rows snapshot the price at add time.
type ProductVariant struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	ProductID    uint    `gorm:"index"`
	SKU          string  `gorm:"uniqueIndex;not null"`
	Size         string  `gorm:"not null"`
	Color        string
	SalePrice    float64 `gorm:"not null"`
	RegularPrice float64
	Weight       float64
	Stock        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Category struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"unique;not null"`
	Slug     string `gorm:"unique;not null"`
	Image    string
	Products []Product `gorm:"many2many:product_categories"`
}
