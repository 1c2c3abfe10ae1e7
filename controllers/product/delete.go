package productControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct soft-deletes a product; existing order items keep their
// frozen copies regardless.
// DELETE /admin/api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid product ID")
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}
		if result.RowsAffected == 0 {
			utils.Fail(c, http.StatusNotFound, "Product not found")
			return
		}
		utils.OK(c, http.StatusOK, "Product deleted", nil)
	}
}
