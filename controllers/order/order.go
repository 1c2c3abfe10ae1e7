package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CheckoutInput struct {
	ShippingAddress models.Address `json:"shipping_address" binding:"required"`
	PaymentMethod   string         `json:"payment_method" binding:"required,oneof=card cod"`
	GuestName       string         `json:"guest_name"`
	GuestEmail      string         `json:"guest_email"`
	GuestPhone      string         `json:"guest_phone"`
}

type CancelInput struct {
	Reason string `json:"reason"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type PaymentStatusInput struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=success failed"`
}

// POST /orders/checkout
// Guests must supply contact details; users checkout against their account.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		checkout := services.CheckoutInput{
			Owner:           owner,
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
		}
		if owner.OwnerType == models.OwnerTypeGuest {
			if input.GuestName == "" || input.GuestEmail == "" {
				utils.Fail(c, http.StatusBadRequest, "guest_name and guest_email are required for guest checkout")
				return
			}
			checkout.Guest = &services.GuestContact{
				Name:  input.GuestName,
				Email: input.GuestEmail,
				Phone: input.GuestPhone,
			}
		}

		order, err := orders.Checkout(checkout)
		if err != nil {
			utils.Error(c, err)
			return
		}
		broadcastOrderEvent(order)
		utils.OK(c, http.StatusCreated, "Order placed", gin.H{
			"order":          order,
			"tracking_token": order.TrackingToken,
		})
	}
}

// GET /orders
func ListMyOrders(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		list, err := orders.ListForUser(userID)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Orders fetched", list)
	}
}

// GET /orders/:order_id
func GetMyOrder(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid order_id")
			return
		}
		order, err := orders.GetForUser(userID, uint(orderID))
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Order fetched", order)
	}
}

// POST /orders/:order_id/cancel
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid order_id")
			return
		}
		var input CancelInput
		_ = c.ShouldBindJSON(&input) // reason is optional

		order, err := orders.Cancel(models.UserOwner(userID), uint(orderID), input.Reason)
		if err != nil {
			utils.Error(c, err)
			return
		}
		broadcastOrderEvent(order)
		utils.OK(c, http.StatusOK, "Order cancelled", order)
	}
}

// GET /orders/track/:token
// Public; the token is the whole credential.
func TrackByToken(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		summary, err := orders.TrackByToken(c.Param("token"))
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Order fetched", summary)
	}
}

// --- admin handlers ---

// GET /admin/api/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		list, err := orders.ListAll()
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Orders fetched", list)
	}
}

// PUT /admin/api/orders/:order_id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid order_id")
			return
		}
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		status, err := mapOrderStatus(input.Status)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		order, err := orders.UpdateStatus(uint(orderID), status)
		if err != nil {
			utils.Error(c, err)
			return
		}
		broadcastOrderEvent(order)
		utils.OK(c, http.StatusOK, "Order status updated", order)
	}
}

// PUT /admin/api/orders/:order_id/payment-status
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	orders := services.NewOrderService(db)
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid order_id")
			return
		}
		var input PaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			utils.Error(c, services.ErrNotFound)
			return
		}
		updated, err := orders.ApplyPaymentResult(order.OrderNumber, input.PaymentStatus == "success")
		if err != nil {
			utils.Error(c, err)
			return
		}
		broadcastOrderEvent(updated)
		utils.OK(c, http.StatusOK, "Payment status updated", updated)
	}
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return models.OrderStatus(status), nil
	default:
		return "", services.ErrInvalidTransition
	}
}
