package services

import (
	"errors"
	"fmt"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/gorm"
)

// InventoryService keeps variant stock and the append-only audit trail in
// lockstep: every stock change goes through Adjust in a single transaction.
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// Adjust applies one inventory movement. ADD/RETURN/RELEASE increase stock,
// REMOVE decreases it, ADJUSTMENT takes a signed quantity. A movement that
// would push stock negative is rejected.
func (s *InventoryService) Adjust(variantID uint, logType models.InventoryLogType, quantity int, note string) (*models.ProductVariant, error) {
	delta, err := stockDelta(logType, quantity)
	if err != nil {
		return nil, err
	}

	var variant models.ProductVariant
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).
			First(&variant, "id = ?", variantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: variant %d", ErrNotFound, variantID)
			}
			return fmt.Errorf("%w: lock variant: %v", ErrStorage, err)
		}
		if variant.Stock+delta < 0 {
			return fmt.Errorf("%w: %s", ErrOutOfStock, variant.SKU)
		}
		variant.Stock += delta
		if err := tx.Save(&variant).Error; err != nil {
			return fmt.Errorf("%w: update stock: %v", ErrStorage, err)
		}
		if err := tx.Create(&models.InventoryLog{
			VariantID: variantID,
			Type:      logType,
			Quantity:  quantity,
			Note:      note,
		}).Error; err != nil {
			return fmt.Errorf("%w: write inventory log: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// History returns the audit trail for a variant, newest first.
func (s *InventoryService) History(variantID uint) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	err := s.db.Where("variant_id = ?", variantID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: fetch inventory logs: %v", ErrStorage, err)
	}
	return logs, nil
}

func stockDelta(logType models.InventoryLogType, quantity int) (int, error) {
	switch logType {
	case models.InventoryLogAdd, models.InventoryLogReturn, models.InventoryLogRelease:
		if quantity <= 0 {
			return 0, fmt.Errorf("quantity must be positive for %s", logType)
		}
		return quantity, nil
	case models.InventoryLogRemove:
		if quantity <= 0 {
			return 0, fmt.Errorf("quantity must be positive for %s", logType)
		}
		return -quantity, nil
	case models.InventoryLogAdjustment:
		return quantity, nil
	default:
		return 0, fmt.Errorf("unknown inventory log type %q", logType)
	}
}
