package paymentControllers

import (
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WebhookPayload is what the gateway posts back after a payment attempt.
// The signature middleware has already authenticated the request body.
type WebhookPayload struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=authorised declined"`
	Reference   string `json:"reference"`
}

// POST /payments/webhook
func PaymentWebhook(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		var payload WebhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
			return
		}

		order, err := orders.ApplyPaymentResult(payload.OrderNumber, payload.Status == "authorised")
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Payment result recorded", gin.H{
			"order_number":   order.OrderNumber,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
		})
	}
}
