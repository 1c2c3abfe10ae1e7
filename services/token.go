package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/oklog/ulid/v2"
)

// RandomToken returns n random bytes hex-encoded, so n=16 gives a 128-bit
// token. Used for guest session IDs and order tracking tokens.
func RandomToken(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the process is in no state to issue tokens
		panic(fmt.Sprintf("rand.Read failed: %v", err))
	}
	return hex.EncodeToString(bytes)
}

// NewOrderNumber returns a unique, human-presentable order number.
func NewOrderNumber() string {
	return "SM-" + ulid.Make().String()
}

// GenerateOtpCode returns a 6-digit numeric code with leading zeros kept.
func GenerateOtpCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		panic(fmt.Sprintf("rand.Int failed: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64())
}
