package auth

import (
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /auth/guest
// Mints a guest session up front for clients that want one before their
// first cart touch (the owner middleware also mints lazily).
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	sessions := services.NewSessionService(db)
	return func(c *gin.Context) {
		session, err := sessions.Create()
		if err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusCreated, "Guest session created", gin.H{
			"session_id": session.ID,
			"expires_at": session.ExpiresAt,
		})
	}
}

// GET /auth/guest/validate
func ValidateGuestSession(db *gorm.DB) gin.HandlerFunc {
	sessions := services.NewSessionService(db)
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		utils.OK(c, http.StatusOK, "Session checked", gin.H{
			"valid": sessionID != "" && sessions.Validate(sessionID),
		})
	}
}
