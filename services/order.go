package services

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/gorm"
)

// orderTransitions is the whole status state machine. CANCELLED is only
// reachable before shipping; there are no self-transitions.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending: {models.OrderStatusPaid, models.OrderStatusCancelled},
	models.OrderStatusPaid:    {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusDelivered},
}

func canTransition(from, to models.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// GuestContact stands in for a user account on guest checkouts.
type GuestContact struct {
	Name  string
	Email string
	Phone string
}

type CheckoutInput struct {
	Owner           models.Owner
	ShippingAddress models.Address
	PaymentMethod   string
	Guest           *GuestContact // required when Owner is a guest session
}

// OrderSummary is the public view returned by tracking-token lookups.
type OrderSummary struct {
	OrderNumber   string               `json:"order_number"`
	Status        models.OrderStatus   `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	TotalAmount   float64              `json:"total_amount"`
	PlacedAt      time.Time            `json:"placed_at"`
	Items         []models.OrderItem   `json:"items"`
}

// OrderService converts carts into immutable orders and walks their status
// state machine.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Checkout creates the order and its price-frozen items, deducts stock under
// row locks, writes the inventory trail and clears the cart, all in one
// transaction. Any failure rolls the whole thing back.
func (s *OrderService) Checkout(in CheckoutInput) (*models.Order, error) {
	if in.Owner.OwnerType == models.OwnerTypeGuest && in.Guest == nil {
		return nil, fmt.Errorf("guest checkout requires contact details")
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("owner_type = ? AND owner_id = ?",
			in.Owner.OwnerType, in.Owner.OwnerID).Find(&cartItems).Error; err != nil {
			return fmt.Errorf("%w: fetch cart: %v", ErrStorage, err)
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		orderNumber := NewOrderNumber()

		var subtotal, totalWeight float64
		var orderItems []models.OrderItem
		for _, item := range cartItems {
			var variant models.ProductVariant
			if err := forUpdate(tx).
				First(&variant, "id = ?", item.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: variant %d", ErrNotFound, item.VariantID)
				}
				return fmt.Errorf("%w: lock variant: %v", ErrStorage, err)
			}

			// Stock may have moved since the item was added.
			if variant.Stock < item.Quantity {
				return fmt.Errorf("%w: %s", ErrOutOfStock, variant.SKU)
			}

			variant.Stock -= item.Quantity
			if err := tx.Save(&variant).Error; err != nil {
				return fmt.Errorf("%w: deduct stock: %v", ErrStorage, err)
			}
			if err := tx.Create(&models.InventoryLog{
				VariantID: variant.ID,
				Type:      models.InventoryLogRemove,
				Quantity:  item.Quantity,
				Note:      "order " + orderNumber,
			}).Error; err != nil {
				return fmt.Errorf("%w: write inventory log: %v", ErrStorage, err)
			}

			var product models.Product
			if err := tx.Unscoped().First(&product, "id = ?", variant.ProductID).Error; err != nil {
				return fmt.Errorf("%w: fetch product: %v", ErrStorage, err)
			}

			subtotal += item.UnitPrice * float64(item.Quantity)
			totalWeight += variant.Weight * float64(item.Quantity)

			orderItems = append(orderItems, models.OrderItem{
				VariantID:   variant.ID,
				ProductName: product.Name,
				Size:        variant.Size,
				Color:       variant.Color,
				Image:       product.Image,
				UnitPrice:   item.UnitPrice,
				Weight:      variant.Weight,
				Quantity:    item.Quantity,
			})
		}

		tax := subtotal * taxRate()
		shippingCost := shippingCost(totalWeight)

		order = models.Order{
			OrderNumber:     orderNumber,
			Items:           orderItems,
			Subtotal:        subtotal,
			Tax:             tax,
			ShippingCost:    shippingCost,
			TotalAmount:     subtotal + tax + shippingCost,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			PaymentMethod:   in.PaymentMethod,
			TrackingToken:   RandomToken(16),
			ShippingAddress: in.ShippingAddress,
			CreatedAt:       time.Now(),
		}
		if in.Owner.OwnerType == models.OwnerTypeUser {
			userID := in.Owner.OwnerID
			order.UserID = &userID
		} else {
			order.GuestName = in.Guest.Name
			order.GuestEmail = in.Guest.Email
			order.GuestPhone = in.Guest.Phone
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("%w: create order: %v", ErrStorage, err)
		}
		if err := clearCart(tx, in.Owner); err != nil {
			return fmt.Errorf("%w: clear cart: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel is permitted while the order is PENDING or PAID. Stock goes back
// with a release entry in the inventory trail.
func (s *OrderService) Cancel(owner models.Owner, orderID uint, reason string) (*models.Order, error) {
	if owner.OwnerType != models.OwnerTypeUser {
		return nil, fmt.Errorf("%w: guest orders are cancelled via support", ErrUnauthorized)
	}
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return fmt.Errorf("%w: fetch order: %v", ErrStorage, err)
		}
		if order.UserID == nil || *order.UserID != owner.OwnerID {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		if !canTransition(order.Status, models.OrderStatusCancelled) {
			return fmt.Errorf("%w: %s -> cancelled", ErrInvalidTransition, order.Status)
		}
		if err := releaseOrderStock(tx, &order); err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled
		order.CancelReason = reason
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("%w: update order: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus is the admin/webhook transition path; it enforces the same
// state machine as Cancel and releases stock when the target is CANCELLED.
func (s *OrderService) UpdateStatus(orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
			}
			return fmt.Errorf("%w: fetch order: %v", ErrStorage, err)
		}
		if !canTransition(order.Status, next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
		}
		if next == models.OrderStatusCancelled {
			if err := releaseOrderStock(tx, &order); err != nil {
				return err
			}
		}
		order.Status = next
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("%w: update order: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ApplyPaymentResult maps a verified gateway callback onto the order. A
// repeated success callback is a no-op, not an error, since gateways retry.
func (s *OrderService) ApplyPaymentResult(orderNumber string, success bool) (*models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "order_number = ?", orderNumber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %s", ErrNotFound, orderNumber)
			}
			return fmt.Errorf("%w: fetch order: %v", ErrStorage, err)
		}
		// SUCCESS is terminal: a late or retried callback of either kind
		// must not un-pay the order.
		if order.PaymentStatus == models.PaymentStatusSuccess {
			return nil
		}
		if !success {
			order.PaymentStatus = models.PaymentStatusFailed
			if err := tx.Save(&order).Error; err != nil {
				return fmt.Errorf("%w: update order: %v", ErrStorage, err)
			}
			return nil
		}
		order.PaymentStatus = models.PaymentStatusSuccess
		if order.Status == models.OrderStatusPending {
			order.Status = models.OrderStatusPaid
		}
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("%w: update order: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TrackByToken is the unauthenticated guest lookup; the token is the whole
// credential and must match exactly.
func (s *OrderService) TrackByToken(token string) (*OrderSummary, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	var order models.Order
	err := s.db.Preload("Items").First(&order, "tracking_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, fmt.Errorf("%w: fetch order: %v", ErrStorage, err)
	}
	return &OrderSummary{
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalAmount:   order.TotalAmount,
		PlacedAt:      order.CreatedAt,
		Items:         order.Items,
	}, nil
}

// TrackByNumberAndEmail backs the OTP-gated guest tracking flow: the OTP
// service verifies the email first, then this resolves the order.
func (s *OrderService) TrackByNumberAndEmail(orderNumber, email string) (*OrderSummary, error) {
	var order models.Order
	err := s.db.Preload("Items").
		First(&order, "order_number = ? AND guest_email = ?", orderNumber, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderNumber)
		}
		return nil, fmt.Errorf("%w: fetch order: %v", ErrStorage, err)
	}
	return &OrderSummary{
		OrderNumber:   order.OrderNumber,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		TotalAmount:   order.TotalAmount,
		PlacedAt:      order.CreatedAt,
		Items:         order.Items,
	}, nil
}

// ListForUser returns a user's order history, newest first.
func (s *OrderService) ListForUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch orders: %v", ErrStorage, err)
	}
	return orders, nil
}

// GetForUser returns one order, scoped to its owner.
func (s *OrderService) GetForUser(userID string, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("%w: fetch order: %v", ErrStorage, err)
	}
	return &order, nil
}

// ListAll is the admin view.
func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("User").Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch orders: %v", ErrStorage, err)
	}
	return orders, nil
}

func releaseOrderStock(tx *gorm.DB, order *models.Order) error {
	for _, item := range order.Items {
		var variant models.ProductVariant
		err := forUpdate(tx).
			First(&variant, "id = ?", item.VariantID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // variant retired since the order was placed
			}
			return fmt.Errorf("%w: lock variant: %v", ErrStorage, err)
		}
		variant.Stock += item.Quantity
		if err := tx.Save(&variant).Error; err != nil {
			return fmt.Errorf("%w: release stock: %v", ErrStorage, err)
		}
		if err := tx.Create(&models.InventoryLog{
			VariantID: variant.ID,
			Type:      models.InventoryLogRelease,
			Quantity:  item.Quantity,
			Note:      "order " + order.OrderNumber + " cancelled",
		}).Error; err != nil {
			return fmt.Errorf("%w: write inventory log: %v", ErrStorage, err)
		}
	}
	return nil
}

func taxRate() float64 {
	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			return rate
		}
	}
	return 0.05
}

// shippingCost tiers by total parcel weight: first kilo free-ish, then a
// flat band per started 30kg.
func shippingCost(totalWeight float64) float64 {
	if totalWeight <= 0 {
		return 0
	}
	return float64(int(math.Ceil((totalWeight-1)/30.0))) * 30.0
}
