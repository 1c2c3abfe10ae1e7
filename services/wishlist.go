package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/gorm"
)

// WishlistService mirrors the cart's dual-key ownership without quantities.
type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// Add saves a product (optionally a specific variant) to the wishlist.
// Re-adding an existing entry returns it unchanged.
func (s *WishlistService) Add(owner models.Owner, productID uint, variantID *uint) (*models.WishlistItem, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, fmt.Errorf("%w: fetch product: %v", ErrStorage, err)
	}

	var item models.WishlistItem
	err := wishlistScope(s.db, owner, productID, variantID).First(&item).Error
	if err == nil {
		item.Product = product
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: fetch wishlist item: %v", ErrStorage, err)
	}

	item = models.WishlistItem{
		Owner:     owner,
		ProductID: productID,
		VariantID: variantID,
		AddedAt:   time.Now(),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("%w: create wishlist item: %v", ErrStorage, err)
	}
	item.Product = product
	return &item, nil
}

// Remove is idempotent like the cart's.
func (s *WishlistService) Remove(owner models.Owner, wishlistItemID uint) error {
	result := s.db.Where("id = ? AND owner_type = ? AND owner_id = ?",
		wishlistItemID, owner.OwnerType, owner.OwnerID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return fmt.Errorf("%w: delete wishlist item: %v", ErrStorage, result.Error)
	}
	return nil
}

func (s *WishlistService) Get(owner models.Owner) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.Preload("Product").Preload("Product.Variants").
		Where("owner_type = ? AND owner_id = ?", owner.OwnerType, owner.OwnerID).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch wishlist: %v", ErrStorage, err)
	}
	return items, nil
}

// MoveToCart adds the wishlisted variant to the cart and deletes the
// wishlist row as one unit. A failed add (out of stock, variant gone)
// rolls everything back and the wishlist row survives.
//
// variantID overrides the stored variant; it is required when the item was
// saved without a size.
func (s *WishlistService) MoveToCart(owner models.Owner, wishlistItemID uint, variantID *uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	var cartItem *models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.WishlistItem
		err := tx.Where("id = ? AND owner_type = ? AND owner_id = ?",
			wishlistItemID, owner.OwnerType, owner.OwnerID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: wishlist item %d", ErrNotFound, wishlistItemID)
			}
			return fmt.Errorf("%w: fetch wishlist item: %v", ErrStorage, err)
		}

		target := item.VariantID
		if variantID != nil {
			target = variantID
		}
		if target == nil {
			return fmt.Errorf("a variant must be selected to move this item to the cart")
		}

		cartItem, err = addCartItem(tx, owner, *target, quantity)
		if err != nil {
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("%w: delete wishlist item: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cartItem, nil
}

func wishlistScope(db *gorm.DB, owner models.Owner, productID uint, variantID *uint) *gorm.DB {
	scope := db.Where("owner_type = ? AND owner_id = ? AND product_id = ?",
		owner.OwnerType, owner.OwnerID, productID)
	if variantID == nil {
		return scope.Where("variant_id IS NULL")
	}
	return scope.Where("variant_id = ?", *variantID)
}
