package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
)

func TestOtpRequestAndVerify(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	msg := sender.last(t)
	if msg.Target != "ann@example.com" {
		t.Errorf("target = %q", msg.Target)
	}
	code := codeFromBody(t, msg.Body)

	identity, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if identity.Target != "ann@example.com" || identity.Purpose != models.OtpPurposeLogin {
		t.Errorf("identity = %+v", identity)
	}
	if identity.Token == "" {
		t.Error("identity token is empty")
	}
}

func TestOtpCodeIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	code := codeFromBody(t, sender.last(t).Body)

	if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", code); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", code); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("reuse err = %v, want ErrInvalidOrExpired", err)
	}
}

func TestOtpConsumeIsAtomic(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	code := codeFromBody(t, sender.last(t).Body)

	// A racing verify consumed the challenge between this call's read and
	// its conditional write; the correct code must still be rejected.
	now := time.Now()
	if err := db.Model(&models.OtpChallenge{}).
		Where("target = ? AND consumed_at IS NULL", "ann@example.com").
		Update("consumed_at", &now).Error; err != nil {
		t.Fatalf("consume directly: %v", err)
	}

	if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", code); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("err = %v, want ErrInvalidOrExpired", err)
	}
}

func TestOtpWrongCode(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", "000000"); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("err = %v, want ErrInvalidOrExpired", err)
	}
	if _, err := otp.Verify(models.OtpPurposeLogin, "nobody@example.com", "123456"); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("unknown target err = %v, want ErrInvalidOrExpired", err)
	}
}

func TestOtpExpiredChallenge(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	code := codeFromBody(t, sender.last(t).Body)

	if err := db.Model(&models.OtpChallenge{}).
		Where("target = ?", "ann@example.com").
		Update("expires_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("age challenge: %v", err)
	}

	if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", code); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("err = %v, want ErrInvalidOrExpired", err)
	}
}

func TestOtpRequestSupersedesPrior(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	firstCode := codeFromBody(t, sender.last(t).Body)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("second request: %v", err)
	}
	secondCode := codeFromBody(t, sender.last(t).Body)

	// Only the newest challenge survives.
	var count int64
	db.Model(&models.OtpChallenge{}).
		Where("target = ? AND consumed_at IS NULL", "ann@example.com").
		Count(&count)
	if count != 1 {
		t.Errorf("open challenges = %d, want 1", count)
	}

	if firstCode != secondCode {
		if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", firstCode); !errors.Is(err, ErrInvalidOrExpired) {
			t.Fatalf("superseded code err = %v, want ErrInvalidOrExpired", err)
		}
	}
	if _, err := otp.Verify(models.OtpPurposeLogin, "ann@example.com", secondCode); err != nil {
		t.Fatalf("verify newest: %v", err)
	}
}

func TestOtpPurposesAreSeparate(t *testing.T) {
	db := newTestDB(t)
	sender := &recorderSender{}
	otp := NewOtpService(db, sender)

	if err := otp.Request(models.OtpPurposeLogin, "ann@example.com"); err != nil {
		t.Fatalf("request: %v", err)
	}
	code := codeFromBody(t, sender.last(t).Body)

	// A login code is not valid for order tracking.
	if _, err := otp.Verify(models.OtpPurposeOrderTracking, "ann@example.com", code); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("cross-purpose err = %v, want ErrInvalidOrExpired", err)
	}
}
