package productControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists the catalog with optional brand/category/search filters.
// GET /products?brand=&category=&q=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Categories").Preload("Variants").Model(&models.Product{})

		if brand := c.Query("brand"); brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if q := c.Query("q"); q != "" {
			query = query.Where("name LIKE ?", "%"+q+"%")
		}
		if category := c.Query("category"); category != "" {
			query = query.Joins("JOIN product_categories pc ON pc.product_id = products.id").
				Joins("JOIN categories ON categories.id = pc.category_id").
				Where("categories.slug = ?", category)
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		utils.OK(c, http.StatusOK, "Products fetched", products)
	}
}

// GetProductByID returns a single product with its variants and categories.
// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		var product models.Product
		if err := db.Preload("Categories").Preload("Variants").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.Fail(c, http.StatusNotFound, "Product not found")
			} else {
				utils.Fail(c, http.StatusInternalServerError, "Failed to retrieve product")
			}
			return
		}
		utils.OK(c, http.StatusOK, "Product fetched", product)
	}
}
