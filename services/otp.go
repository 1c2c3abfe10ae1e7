package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultOtpTTL = 5 * time.Minute

// Sender dispatches a one-time code out of band. The email client satisfies
// it; tests plug in a recorder.
type Sender interface {
	Send(target, subject, body string) error
}

// VerifiedIdentity is handed back after a successful verification so the
// caller can finish its flow (login, signup, order view).
type VerifiedIdentity struct {
	Purpose models.OtpPurpose `json:"purpose"`
	Target  string            `json:"target"`
	Token   string            `json:"token"` // short-lived signed assertion
}

// OtpService issues and verifies single-use numeric challenges. Only the
// bcrypt hash of a code is ever stored.
type OtpService struct {
	db     *gorm.DB
	sender Sender
}

func NewOtpService(db *gorm.DB, sender Sender) *OtpService {
	return &OtpService{db: db, sender: sender}
}

// Request creates a fresh challenge and dispatches the code. Any prior
// unconsumed challenge for the same (purpose, target) is superseded so
// codes cannot accumulate.
func (s *OtpService) Request(purpose models.OtpPurpose, target string) error {
	code := GenerateOtpCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash otp code: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("purpose = ? AND target = ? AND consumed_at IS NULL",
			purpose, target).Delete(&models.OtpChallenge{}).Error; err != nil {
			return fmt.Errorf("%w: supersede challenges: %v", ErrStorage, err)
		}
		challenge := models.OtpChallenge{
			Purpose:   purpose,
			Target:    target,
			CodeHash:  string(hash),
			ExpiresAt: time.Now().Add(otpTTL()),
		}
		if err := tx.Create(&challenge).Error; err != nil {
			return fmt.Errorf("%w: create challenge: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	subject := "Your SoleMate verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.",
		code, int(otpTTL().Minutes()))
	if err := s.sender.Send(target, subject, body); err != nil {
		return fmt.Errorf("dispatch otp code: %w", err)
	}
	return nil
}

// Verify consumes the matching challenge. Wrong code, expired challenge and
// reuse all collapse into ErrInvalidOrExpired so callers cannot probe which
// it was.
func (s *OtpService) Verify(purpose models.OtpPurpose, target, code string) (*VerifiedIdentity, error) {
	var challenge models.OtpChallenge
	err := s.db.Where("purpose = ? AND target = ? AND consumed_at IS NULL",
		purpose, target).Order("created_at DESC").First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOrExpired
		}
		return nil, fmt.Errorf("%w: fetch challenge: %v", ErrStorage, err)
	}
	if time.Now().After(challenge.ExpiresAt) {
		return nil, ErrInvalidOrExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)) != nil {
		return nil, ErrInvalidOrExpired
	}

	// Conditional update so two concurrent verifies cannot both consume
	// the same challenge; the loser sees zero rows.
	now := time.Now()
	result := s.db.Model(&models.OtpChallenge{}).
		Where("id = ? AND consumed_at IS NULL", challenge.ID).
		Update("consumed_at", &now)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: consume challenge: %v", ErrStorage, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrInvalidOrExpired
	}

	token, err := signIdentityToken(purpose, target)
	if err != nil {
		return nil, err
	}
	return &VerifiedIdentity{Purpose: purpose, Target: target, Token: token}, nil
}

func signIdentityToken(purpose models.OtpPurpose, target string) (string, error) {
	claims := jwt.MapClaims{
		"purpose": string(purpose),
		"target":  target,
		"exp":     time.Now().Add(10 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", fmt.Errorf("sign identity token: %w", err)
	}
	return signed, nil
}

func otpTTL() time.Duration {
	if v := os.Getenv("OTP_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultOtpTTL
}
