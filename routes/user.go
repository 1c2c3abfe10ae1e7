package routes

import (
	userControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/user"
	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the "/user/*" profile endpoints (JWT-protected).
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))
	}
}
