package routes

import (
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, sender services.Sender) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, sender)

	// Public catalog
	SetupShopRoutes(r, db)

	// User profile (JWT-protected)
	SetupUserRoutes(r, db)

	// Cart/wishlist/notifications (user JWT or guest session)
	SetupCommerceRoutes(r, db)

	// Checkout, order history, tracking
	SetupOrderRoutes(r, db, sender)

	// Payment gateway webhook
	SetupPaymentRoutes(r, db)

	// Admin back-office (API-key-protected)
	SetupAdminRoutes(r, db)
}
