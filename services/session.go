package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/gorm"
)

const defaultGuestSessionTTL = 72 * time.Hour

// SessionService issues and validates anonymous guest session tokens.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// Create mints a new guest session with a random 128-bit token.
func (s *SessionService) Create() (*models.GuestSession, error) {
	now := time.Now()
	session := models.GuestSession{
		ID:        "guest_" + RandomToken(16),
		CreatedAt: now,
		ExpiresAt: now.Add(guestSessionTTL()),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("%w: create guest session: %v", ErrStorage, err)
	}
	return &session, nil
}

// Validate reports whether the token identifies a live guest session.
// Unknown, expired and migrated tokens are all a plain false, never an error.
func (s *SessionService) Validate(sessionID string) bool {
	var session models.GuestSession
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		return false
	}
	if session.MigratedAt != nil {
		return false
	}
	return time.Now().Before(session.ExpiresAt)
}

// invalidateSession marks a session migrated inside an ongoing transaction.
// Only the migration routine calls this.
func invalidateSession(tx *gorm.DB, sessionID string) error {
	now := time.Now()
	return tx.Model(&models.GuestSession{}).
		Where("id = ?", sessionID).
		Update("migrated_at", &now).Error
}

func guestSessionTTL() time.Duration {
	if v := os.Getenv("GUEST_SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultGuestSessionTTL
}
