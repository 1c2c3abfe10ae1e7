package routes

import (
	paymentControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/payment"
	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payments := r.Group("/payments")
	{
		payments.POST("/webhook", middleware.PaymentWebhookAuth(), paymentControllers.PaymentWebhook(db))
	}
}
