package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	VariantID *uint `json:"variant_id"`
}

type MoveToCartInput struct {
	VariantID *uint `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// GET /wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	wishlist := services.NewWishlistService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		items, err := wishlist.Get(owner)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Wishlist fetched", items)
	}
}

// POST /wishlist
func AddItem(db *gorm.DB) gin.HandlerFunc {
	wishlist := services.NewWishlistService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		var input AddInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		item, err := wishlist.Add(owner, input.ProductID, input.VariantID)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusCreated, "Saved to wishlist", item)
	}
}

// DELETE /wishlist/:item_id
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	wishlist := services.NewWishlistService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid item_id")
			return
		}
		if err := wishlist.Remove(owner, uint(itemID)); err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Removed from wishlist", nil)
	}
}

// POST /wishlist/:item_id/move-to-cart
func MoveToCart(db *gorm.DB) gin.HandlerFunc {
	wishlist := services.NewWishlistService(db)
	return func(c *gin.Context) {
		owner, ok := middleware.Owner(c)
		if !ok {
			utils.Fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid item_id")
			return
		}
		var input MoveToCartInput
		if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		item, err := wishlist.MoveToCart(owner, uint(itemID), input.VariantID, input.Quantity)
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Moved to cart", item)
	}
}
