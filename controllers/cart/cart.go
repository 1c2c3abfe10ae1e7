package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=0"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	cart := services.NewCartService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		items, err := cart.Get(owner)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Cart fetched", items)
	}
}

// POST /cart
func AddItem(db *gorm.DB) gin.HandlerFunc {
	cart := services.NewCartService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		item, err := cart.AddItem(owner, input.VariantID, input.Quantity)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusCreated, "Added to cart", item)
	}
}

// PUT /cart/:item_id
// Quantity 0 means remove, matching what the quantity stepper sends.
func UpdateQuantity(db *gorm.DB) gin.HandlerFunc {
	cart := services.NewCartService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		itemID, err := parseID(c.Param("item_id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid item_id")
			return
		}
		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if input.Quantity == 0 {
			if err := cart.RemoveItem(owner, itemID); err != nil {
				utils.Error(c, err)
				return
			}
			utils.OK(c, http.StatusOK, "Removed from cart", nil)
			return
		}

		item, err := cart.UpdateQuantity(owner, itemID, input.Quantity)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Cart updated", item)
	}
}

// DELETE /cart/:item_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	cart := services.NewCartService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		itemID, err := parseID(c.Param("item_id"))
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid item_id")
			return
		}
		if err := cart.RemoveItem(owner, itemID); err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Removed from cart", nil)
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	cart := services.NewCartService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if err := cart.Clear(owner); err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Cart cleared", nil)
	}
}

func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
