package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/gorm"
)

// MigrationService re-keys guest-owned commerce state to a user account.
// It is the only writer allowed to flip row ownership.
type MigrationService struct {
	db *gorm.DB
}

func NewMigrationService(db *gorm.DB) *MigrationService {
	return &MigrationService{db: db}
}

// Migrate moves every cart and wishlist row owned by the session to the
// user in one transaction, then invalidates the session's guest scope.
// Cart conflicts merge quantities; wishlist conflicts dedupe. Running it a
// second time is a no-op because the guest scope is already empty.
func (s *MigrationService) Migrate(sessionID, userID string) error {
	guest := models.GuestOwner(sessionID)
	user := models.UserOwner(userID)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var guestCart []models.CartItem
		if err := tx.Where("owner_type = ? AND owner_id = ?",
			guest.OwnerType, guest.OwnerID).Find(&guestCart).Error; err != nil {
			return fmt.Errorf("%w: fetch guest cart: %v", ErrStorage, err)
		}

		for _, guestItem := range guestCart {
			var userItem models.CartItem
			err := tx.Where("owner_type = ? AND owner_id = ? AND variant_id = ?",
				user.OwnerType, user.OwnerID, guestItem.VariantID).First(&userItem).Error

			switch {
			case err == nil:
				// User already carries this variant; fold the quantities.
				userItem.Quantity += guestItem.Quantity
				userItem.AddedAt = time.Now()
				if err := tx.Save(&userItem).Error; err != nil {
					return fmt.Errorf("%w: merge cart item: %v", ErrStorage, err)
				}
				if err := tx.Delete(&guestItem).Error; err != nil {
					return fmt.Errorf("%w: drop merged guest item: %v", ErrStorage, err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Model(&models.CartItem{}).
					Where("id = ?", guestItem.ID).
					Updates(map[string]interface{}{
						"owner_type": user.OwnerType,
						"owner_id":   user.OwnerID,
					}).Error; err != nil {
					return fmt.Errorf("%w: re-key cart item: %v", ErrStorage, err)
				}
			default:
				return fmt.Errorf("%w: fetch user cart item: %v", ErrStorage, err)
			}
		}

		var guestWishlist []models.WishlistItem
		if err := tx.Where("owner_type = ? AND owner_id = ?",
			guest.OwnerType, guest.OwnerID).Find(&guestWishlist).Error; err != nil {
			return fmt.Errorf("%w: fetch guest wishlist: %v", ErrStorage, err)
		}

		for _, guestItem := range guestWishlist {
			var existing models.WishlistItem
			err := wishlistScope(tx, user, guestItem.ProductID, guestItem.VariantID).
				First(&existing).Error

			switch {
			case err == nil:
				// Duplicate wish; the guest copy just goes away.
				if err := tx.Delete(&guestItem).Error; err != nil {
					return fmt.Errorf("%w: drop duplicate wishlist item: %v", ErrStorage, err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Model(&models.WishlistItem{}).
					Where("id = ?", guestItem.ID).
					Updates(map[string]interface{}{
						"owner_type": user.OwnerType,
						"owner_id":   user.OwnerID,
					}).Error; err != nil {
					return fmt.Errorf("%w: re-key wishlist item: %v", ErrStorage, err)
				}
			default:
				return fmt.Errorf("%w: fetch user wishlist item: %v", ErrStorage, err)
			}
		}

		if err := invalidateSession(tx, sessionID); err != nil {
			return fmt.Errorf("%w: invalidate session: %v", ErrStorage, err)
		}
		return nil
	})
}
