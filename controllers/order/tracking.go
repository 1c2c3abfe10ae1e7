package orderControllers

import (
	"errors"
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TrackingOtpInput struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

type TrackingVerifyInput struct {
	OrderNumber string `json:"order_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
}

// POST /orders/track/request
// Guest order tracking without the token: prove you own the contact email.
// The response is the same whether or not the order exists, so the endpoint
// cannot be used to probe order numbers.
func RequestTrackingOtp(db *gorm.DB, sender services.Sender) gin.HandlerFunc {
	otp := services.NewOtpService(db, sender)
	return func(c *gin.Context) {
		var input TrackingOtpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var order models.Order
		err := db.First(&order, "order_number = ? AND guest_email = ?",
			input.OrderNumber, input.Email).Error
		if err == nil {
			if err := otp.Request(models.OtpPurposeOrderTracking, input.Email); err != nil {
				utils.Error(c, err)
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, services.ErrStorage)
			return
		}

		utils.OK(c, http.StatusOK, "If the order exists, a code has been sent", nil)
	}
}

// POST /orders/track/verify
func VerifyTrackingOtp(db *gorm.DB, sender services.Sender) gin.HandlerFunc {
	otp := services.NewOtpService(db, sender)
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		var input TrackingVerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if _, err := otp.Verify(models.OtpPurposeOrderTracking, input.Email, input.Code); err != nil {
			utils.Error(c, err)
			return
		}

		summary, err := orders.TrackByNumberAndEmail(input.OrderNumber, input.Email)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Order fetched", summary)
	}
}
