package productControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Image string `json:"image"`
}

// GET /categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}
		utils.OK(c, http.StatusOK, "Categories fetched", categories)
	}
}

// POST /admin/api/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		category := models.Category{Name: input.Name, Slug: input.Slug, Image: input.Image}
		if err := db.Create(&category).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to create category")
			return
		}
		utils.OK(c, http.StatusCreated, "Category created", category)
	}
}

// DELETE /admin/api/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid category ID")
			return
		}
		result := db.Delete(&models.Category{}, id)
		if result.Error != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to delete category")
			return
		}
		if result.RowsAffected == 0 {
			utils.Fail(c, http.StatusNotFound, "Category not found")
			return
		}
		utils.OK(c, http.StatusOK, "Category deleted", nil)
	}
}
