package notificationControllers

import (
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	P256dh   string `json:"p256dh" binding:"required"`
	Auth     string `json:"auth" binding:"required"`
}

// POST /notifications/subscribe
// Re-registering the same endpoint just refreshes its keys.
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var input SubscribeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var sub models.PushSubscription
		err := db.Where("endpoint = ?", input.Endpoint).First(&sub).Error
		if err == nil {
			sub.Owner = owner
			sub.P256dh = input.P256dh
			sub.Auth = input.Auth
			if err := db.Save(&sub).Error; err != nil {
				utils.Fail(c, http.StatusInternalServerError, "Failed to update subscription")
				return
			}
			utils.OK(c, http.StatusOK, "Subscription refreshed", sub)
			return
		}

		sub = models.PushSubscription{
			Owner:    owner,
			Endpoint: input.Endpoint,
			P256dh:   input.P256dh,
			Auth:     input.Auth,
		}
		if err := db.Create(&sub).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to create subscription")
			return
		}
		utils.OK(c, http.StatusCreated, "Subscribed to notifications", sub)
	}
}

// DELETE /notifications/subscribe
func Unsubscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		endpoint := c.Query("endpoint")
		if endpoint == "" {
			utils.Fail(c, http.StatusBadRequest, "endpoint is required")
			return
		}
		if err := db.Where("endpoint = ? AND owner_type = ? AND owner_id = ?",
			endpoint, owner.OwnerType, owner.OwnerID).
			Delete(&models.PushSubscription{}).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to remove subscription")
			return
		}
		utils.OK(c, http.StatusOK, "Unsubscribed", nil)
	}
}
