package routes

import (
	orderControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/order"
	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, sender services.Sender) {
	orders := r.Group("/orders")
	{
		// Checkout works for users and guests alike.
		orders.POST("/checkout", middleware.ResolveOwner(db), orderControllers.Checkout(db))

		// Public guest tracking: by token, or OTP-gated by order number + email.
		orders.GET("/track/:token", orderControllers.TrackByToken(db))
		orders.POST("/track/request", orderControllers.RequestTrackingOtp(db, sender))
		orders.POST("/track/verify", orderControllers.VerifyTrackingOtp(db, sender))

		// Order history needs an account.
		authed := orders.Group("")
		authed.Use(middleware.ValidateToken)
		{
			authed.GET("", orderControllers.ListMyOrders(db))
			authed.GET("/:order_id", orderControllers.GetMyOrder(db))
			authed.POST("/:order_id/cancel", orderControllers.CancelOrder(db))
		}
	}
}
