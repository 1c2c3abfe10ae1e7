package middleware

import (
	"net/http"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GuestSessionHeader carries the guest session token both ways: clients send
// it on every cart/wishlist call and the server echoes (or mints) it back.
const GuestSessionHeader = "X-Guest-Session"

const ownerKey = "owner"

// ResolveOwner decides who is shopping. A valid JWT wins; otherwise the
// guest session header identifies the caller, and a missing or dead session
// is replaced with a freshly minted one on the spot, echoed back in the
// response header.
func ResolveOwner(db *gorm.DB) gin.HandlerFunc {
	sessions := services.NewSessionService(db)
	return func(c *gin.Context) {
		if userID, err := parseUserToken(c); err == nil {
			c.Set(ownerKey, models.UserOwner(userID))
			c.Set("user_id", userID)
			c.Next()
			return
		}

		sessionID := c.GetHeader(GuestSessionHeader)
		if sessionID == "" || !sessions.Validate(sessionID) {
			session, err := sessions.Create()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create guest session"})
				c.Abort()
				return
			}
			sessionID = session.ID
		}
		c.Header(GuestSessionHeader, sessionID)
		c.Set(ownerKey, models.GuestOwner(sessionID))
		c.Next()
	}
}

// Owner returns the owner placed on the context by ResolveOwner.
func Owner(c *gin.Context) (models.Owner, bool) {
	value, exists := c.Get(ownerKey)
	if !exists {
		return models.Owner{}, false
	}
	owner, ok := value.(models.Owner)
	return owner, ok
}
