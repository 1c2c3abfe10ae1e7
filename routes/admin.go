package routes

import (
	adminControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/admin"
	orderControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/order"
	productControllers "github.com/Umar-Zansphere/shoeShop-sub001/controllers/product"
	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office API behind the shared API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin/api")
	admin.Use(middleware.ValidateAPIKey)
	{
		// Catalog management
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.PUT("/variants/:id", productControllers.UpdateVariant(db))
		admin.POST("/categories", productControllers.CreateCategory(db))
		admin.DELETE("/categories/:id", productControllers.DeleteCategory(db))

		// Inventory
		admin.POST("/variants/:id/inventory", adminControllers.AdjustInventory(db))
		admin.GET("/variants/:id/inventory", adminControllers.InventoryHistory(db))

		// Orders
		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/export", adminControllers.ExportOrdersToExcel(db))
		admin.PUT("/orders/:order_id/status", orderControllers.UpdateOrderStatus(db))
		admin.PUT("/orders/:order_id/payment-status", orderControllers.UpdatePaymentStatus(db))
		admin.GET("/orders/ws", orderControllers.OrderEventsSocket)

		// Customers
		admin.GET("/users", adminControllers.GetAllUsers(db))
		admin.GET("/users/:user_id/cart", adminControllers.GetUserCart(db))
	}
}
