package productControllers

import (
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VariantInput struct {
	SKU          string  `json:"sku" binding:"required"`
	Size         string  `json:"size" binding:"required"`
	Color        string  `json:"color"`
	SalePrice    float64 `json:"sale_price" binding:"required,gt=0"`
	RegularPrice float64 `json:"regular_price"`
	Weight       float64 `json:"weight"`
	Stock        int     `json:"stock" binding:"min=0"`
}

type CreateProductInput struct {
	Name        string         `json:"name" binding:"required"`
	Brand       string         `json:"brand"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	CategoryIDs []uint         `json:"category_ids"`
	Variants    []VariantInput `json:"variants" binding:"required,min=1,dive"`
}

// CreateProduct creates a product with its size/colour variants.
// POST /admin/api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Find(&categories, input.CategoryIDs).Error; err != nil {
				utils.Fail(c, http.StatusBadRequest, "Invalid category_ids")
				return
			}
		}

		product := models.Product{
			Name:        input.Name,
			Brand:       input.Brand,
			Description: input.Description,
			Image:       input.Image,
			Categories:  categories,
		}
		for _, v := range input.Variants {
			product.Variants = append(product.Variants, models.ProductVariant{
				SKU:          v.SKU,
				Size:         v.Size,
				Color:        v.Color,
				SalePrice:    v.SalePrice,
				RegularPrice: v.RegularPrice,
				Weight:       v.Weight,
				Stock:        v.Stock,
			})
		}

		// Initial stock rides in on the variant rows; log it so the audit
		// trail starts from the true opening balance.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			for _, variant := range product.Variants {
				if variant.Stock == 0 {
					continue
				}
				if err := tx.Create(&models.InventoryLog{
					VariantID: variant.ID,
					Type:      models.InventoryLogAdd,
					Quantity:  variant.Stock,
					Note:      "initial stock",
				}).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		utils.OK(c, http.StatusCreated, "Product created", product)
	}
}
