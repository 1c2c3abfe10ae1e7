package productControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string `json:"name"`
	Brand       *string `json:"brand"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CategoryIDs []uint  `json:"category_ids"`
}

type UpdateVariantInput struct {
	SalePrice    *float64 `json:"sale_price"`
	RegularPrice *float64 `json:"regular_price"`
	Weight       *float64 `json:"weight"`
}

// UpdateProduct patches product fields; variants have their own endpoint.
// PUT /admin/api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				utils.Fail(c, http.StatusInternalServerError, "Failed to update product")
				return
			}
		}

		if input.CategoryIDs != nil {
			var categories []models.Category
			if err := db.Find(&categories, input.CategoryIDs).Error; err != nil {
				utils.Fail(c, http.StatusBadRequest, "Invalid category_ids")
				return
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				utils.Fail(c, http.StatusInternalServerError, "Failed to update categories")
				return
			}
		}

		utils.OK(c, http.StatusOK, "Product updated", product)
	}
}

// UpdateVariant reprices a variant; stock changes go through the inventory
// endpoints so the audit trail stays complete.
// PUT /admin/api/variants/:id
func UpdateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid variant ID")
			return
		}

		var variant models.ProductVariant
		if err := db.First(&variant, id).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Variant not found")
			return
		}

		var input UpdateVariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		updates := make(map[string]interface{})
		if input.SalePrice != nil {
			updates["sale_price"] = *input.SalePrice
		}
		if input.RegularPrice != nil {
			updates["regular_price"] = *input.RegularPrice
		}
		if input.Weight != nil {
			updates["weight"] = *input.Weight
		}
		if len(updates) > 0 {
			if err := db.Model(&variant).Updates(updates).Error; err != nil {
				utils.Fail(c, http.StatusInternalServerError, "Failed to update variant")
				return
			}
		}
		utils.OK(c, http.StatusOK, "Variant updated", variant)
	}
}
