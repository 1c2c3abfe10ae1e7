package routes

import (
	"github.com/Umar-Zansphere/shoeShop-sub001/auth"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, sender services.Sender) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession(db))
		authGroup.GET("/guest/validate", auth.ValidateGuestSession(db))

		authGroup.POST("/otp/request", auth.RequestOtp(db, sender))
		authGroup.POST("/login", auth.Login(db, sender))
		authGroup.POST("/signup", auth.Signup(db, sender))

		authGroup.POST("/admin/login", auth.AdminLogin(db))
	}
}
