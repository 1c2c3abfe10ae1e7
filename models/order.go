package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting payment
	OrderStatusPaid      OrderStatus = "paid"      // payment confirmed
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderNumber   string        `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID        *string       `gorm:"index" json:"user_id,omitempty"`
	User          *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	GuestName     string        `json:"guest_name,omitempty"`
	GuestEmail    string        `json:"guest_email,omitempty"`
	GuestPhone    string        `json:"guest_phone,omitempty"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	ShippingCost  float64       `json:"shipping_cost"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"` // e.g. "card", "cod"
	// TrackingToken is the sole guard for unauthenticated guest access to
	// this order, so it must be unguessable.
	TrackingToken   string  `gorm:"uniqueIndex;not null" json:"-"`
	ShippingAddress Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	CancelReason    string  `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderItem is a price-frozen copy of a cart line; it never changes after
// the order is created, even if the variant is repriced or deleted.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"index"`
	VariantID   uint
	ProductName string
	Size        string
	Color       string
	Image       string
	UnitPrice   float64
	Weight      float64
	Quantity    int
}
