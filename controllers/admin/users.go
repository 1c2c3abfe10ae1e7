package adminControllers

import (
	"log"
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/api/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "phone", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			log.Println("❌ Failed to fetch users:", err)
			utils.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		utils.OK(c, http.StatusOK, "Users fetched", users)
	}
}

// GET /admin/api/users/:user_id/cart
// Support tooling: inspect what a customer currently has in their cart.
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	cart := services.NewCartService(db)
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			utils.Fail(c, http.StatusBadRequest, "user_id is required")
			return
		}
		items, err := cart.Get(models.UserOwner(userID))
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Cart fetched", items)
	}
}
