package models

import "time"

type OtpPurpose string

const (
	OtpPurposeLogin         OtpPurpose = "login"
	OtpPurposeSignup        OtpPurpose = "signup"
	OtpPurposeOrderTracking OtpPurpose = "order_tracking"
)

// OtpChallenge stores only the bcrypt hash of the code. A challenge is
// consumed exactly once; expired or consumed challenges never validate.
type OtpChallenge struct {
	ID         uint       `gorm:"primaryKey"`
	Purpose    OtpPurpose `gorm:"type:VARCHAR(20);not null;index:idx_otp_target"`
	Target     string     `gorm:"not null;index:idx_otp_target"` // phone or email
	CodeHash   string     `gorm:"not null"`
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}
