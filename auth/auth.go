package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/middleware"
	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/Umar-Zansphere/shoeShop-sub001/services"
	"github.com/Umar-Zansphere/shoeShop-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type OtpRequestInput struct {
	Purpose string `json:"purpose" binding:"required,oneof=login signup"`
	Email   string `json:"email" binding:"required,email"`
}

type LoginInput struct {
	Email   string `json:"email" binding:"required,email"`
	Code    string `json:"code" binding:"required,len=6"`
	GuestID string `json:"guest_session_id"`
}

type SignupInput struct {
	Email   string `json:"email" binding:"required,email"`
	Code    string `json:"code" binding:"required,len=6"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	GuestID string `json:"guest_session_id"`
}

// POST /auth/otp/request
func RequestOtp(db *gorm.DB, sender services.Sender) gin.HandlerFunc {
	otp := services.NewOtpService(db, sender)
	return func(c *gin.Context) {
		var input OtpRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		if err := otp.Request(models.OtpPurpose(input.Purpose), input.Email); err != nil {
			utils.Error(c, err)
			return
		}
		utils.OK(c, http.StatusOK, "Verification code sent", nil)
	}
}

// POST /auth/login
func Login(db *gorm.DB, sender services.Sender) gin.HandlerFunc {
	otp := services.NewOtpService(db, sender)
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if _, err := otp.Verify(models.OtpPurposeLogin, input.Email, input.Code); err != nil {
			utils.Error(c, err)
			return
		}

		var user models.User
		if err := db.First(&user, "email = ?", input.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.Fail(c, http.StatusNotFound, "No account for this email; sign up first")
				return
			}
			utils.Error(c, services.ErrStorage)
			return
		}

		finishAuth(c, db, &user, input.GuestID, "Login successful")
	}
}

// POST /auth/signup
func Signup(db *gorm.DB, sender services.Sender) gin.HandlerFunc {
	otp := services.NewOtpService(db, sender)
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		if _, err := otp.Verify(models.OtpPurposeSignup, input.Email, input.Code); err != nil {
			utils.Error(c, err)
			return
		}

		var user models.User
		err := db.First(&user, "email = ?", input.Email).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				ID:    "user_" + uuid.NewString(),
				Email: input.Email,
				Name:  input.Name,
				Phone: input.Phone,
			}
			if err := db.Create(&user).Error; err != nil {
				utils.Error(c, services.ErrStorage)
				return
			}
		} else if err != nil {
			utils.Error(c, services.ErrStorage)
			return
		}

		finishAuth(c, db, &user, input.GuestID, "Signup successful")
	}
}

// finishAuth is the single exit of login and signup: it runs the guest
// migration exactly once, then issues the user token. Keeping the call here
// makes "migrate on successful auth" structural instead of a convention
// each handler has to remember.
func finishAuth(c *gin.Context, db *gorm.DB, user *models.User, guestSessionID, message string) {
	migrated := false
	if guestSessionID == "" {
		guestSessionID = c.GetHeader(middleware.GuestSessionHeader)
	}
	if guestSessionID != "" {
		if err := services.NewMigrationService(db).Migrate(guestSessionID, user.ID); err != nil {
			// The login itself succeeded; losing the merge is survivable.
			log.Printf("⚠️ guest migration failed for session %s: %v", guestSessionID, err)
		} else {
			migrated = true
		}
	}

	token, err := issueUserToken(user)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Token generation failed")
		return
	}

	utils.OK(c, http.StatusOK, message, gin.H{
		"user":           user,
		"token":          token,
		"guest_migrated": migrated,
	})
}

func issueUserToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    "user",
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/admin/login
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}

		var admin models.Admin
		if err := db.First(&admin, "email = ?", input.Email).Error; err != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if !admin.Approved {
			utils.Fail(c, http.StatusForbidden, "Admin account awaiting approval")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
			utils.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		claims := jwt.MapClaims{
			"admin_id": admin.ID,
			"email":    admin.Email,
			"role":     "admin",
			"exp":      time.Now().Add(12 * time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Token generation failed")
			return
		}

		utils.OK(c, http.StatusOK, "Admin login successful", gin.H{
			"admin": gin.H{"id": admin.ID, "email": admin.Email, "name": admin.Name},
			"token": token,
		})
	}
}
