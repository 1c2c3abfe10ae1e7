package routes

import (
	cartControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/cart"
	notificationControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/notification"
	wishlistControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/wishlist"
	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCommerceRoutes registers cart, wishlist and notification endpoints.
// ResolveOwner lets the same handlers serve both logged-in users and guests;
// a first guest touch mints the session right here.
func SetupCommerceRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ResolveOwner(db))
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddItem(db))
		cartGroup.PUT("/:item_id", cartControllers.UpdateQuantity(db))
		cartGroup.DELETE("/:item_id", cartControllers.RemoveItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}

	wishlistGroup := r.Group("/wishlist")
	wishlistGroup.Use(middleware.ResolveOwner(db))
	{
		wishlistGroup.GET("", wishlistControllers.GetWishlist(db))
		wishlistGroup.POST("", wishlistControllers.AddItem(db))
		wishlistGroup.DELETE("/:item_id", wishlistControllers.RemoveItem(db))
		wishlistGroup.POST("/:item_id/move-to-cart", wishlistControllers.MoveToCart(db))
	}

	notificationGroup := r.Group("/notifications")
	notificationGroup.Use(middleware.ResolveOwner(db))
	{
		notificationGroup.POST("/subscribe", notificationControllers.Subscribe(db))
		notificationGroup.DELETE("/subscribe", notificationControllers.Unsubscribe(db))
	}
}
