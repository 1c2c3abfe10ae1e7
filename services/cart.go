package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/gorm"
)

// CartService is CRUD over cart rows keyed by an Owner (user or guest
// session). Stock is checked at add time without reservation, so a losing
// race is caught again at checkout.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddItem upserts on (owner, variant): an existing row gets its quantity
// incremented, otherwise a new row is created with the variant's current
// sale price frozen in.
func (s *CartService) AddItem(owner models.Owner, variantID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	var item *models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		item, txErr = addCartItem(tx, owner, variantID, quantity)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// addCartItem is the shared upsert used by AddItem and by the wishlist's
// MoveToCart, which runs it inside its own transaction.
func addCartItem(tx *gorm.DB, owner models.Owner, variantID uint, quantity int) (*models.CartItem, error) {
	var variant models.ProductVariant
	if err := tx.First(&variant, "id = ?", variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: variant %d", ErrNotFound, variantID)
		}
		return nil, fmt.Errorf("%w: fetch variant: %v", ErrStorage, err)
	}

	var item models.CartItem
	err := tx.Where("owner_type = ? AND owner_id = ? AND variant_id = ?",
		owner.OwnerType, owner.OwnerID, variantID).First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: fetch cart item: %v", ErrStorage, err)
		}
		if variant.Stock < quantity {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, variant.SKU)
		}
		item = models.CartItem{
			Owner:     owner,
			VariantID: variantID,
			Quantity:  quantity,
			UnitPrice: variant.SalePrice,
			AddedAt:   time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("%w: create cart item: %v", ErrStorage, err)
		}
		item.Variant = variant
		return &item, nil
	}

	newQuantity := item.Quantity + quantity
	if variant.Stock < newQuantity {
		return nil, fmt.Errorf("%w: %s", ErrOutOfStock, variant.SKU)
	}
	item.Quantity = newQuantity
	item.AddedAt = time.Now()
	if err := tx.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: update cart item: %v", ErrStorage, err)
	}
	item.Variant = variant
	return &item, nil
}

// UpdateQuantity sets an absolute quantity. Callers map 0 to RemoveItem.
func (s *CartService) UpdateQuantity(owner models.Owner, cartItemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	var item models.CartItem
	err := s.db.Where("id = ? AND owner_type = ? AND owner_id = ?",
		cartItemID, owner.OwnerType, owner.OwnerID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, cartItemID)
		}
		return nil, fmt.Errorf("%w: fetch cart item: %v", ErrStorage, err)
	}
	item.Quantity = quantity
	item.AddedAt = time.Now()
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: update cart item: %v", ErrStorage, err)
	}
	return &item, nil
}

// RemoveItem is idempotent; deleting an absent row is already-removed, not
// an error.
func (s *CartService) RemoveItem(owner models.Owner, cartItemID uint) error {
	result := s.db.Where("id = ? AND owner_type = ? AND owner_id = ?",
		cartItemID, owner.OwnerType, owner.OwnerID).Delete(&models.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("%w: delete cart item: %v", ErrStorage, result.Error)
	}
	return nil
}

// Get returns the owner's cart snapshot. Prices on the rows are the frozen
// add-time snapshots; live prices come from the preloaded variant.
func (s *CartService) Get(owner models.Owner) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.Preload("Variant").
		Where("owner_type = ? AND owner_id = ?", owner.OwnerType, owner.OwnerID).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch cart: %v", ErrStorage, err)
	}
	return items, nil
}

func clearCart(tx *gorm.DB, owner models.Owner) error {
	return tx.Where("owner_type = ? AND owner_id = ?", owner.OwnerType, owner.OwnerID).
		Delete(&models.CartItem{}).Error
}

// Clear empties the owner's cart.
func (s *CartService) Clear(owner models.Owner) error {
	if err := clearCart(s.db, owner); err != nil {
		return fmt.Errorf("%w: clear cart: %v", ErrStorage, err)
	}
	return nil
}
