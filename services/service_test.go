package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema. The
// DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestSession{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Category{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OtpChallenge{},
		&models.InventoryLog{},
		&models.PushSubscription{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedVariant creates a product with one variant and returns the variant.
func seedVariant(t *testing.T, db *gorm.DB, sku string, price float64, stock int) models.ProductVariant {
	t.Helper()
	product := models.Product{
		Name:  "Runner " + sku,
		Brand: "SoleMate",
		Variants: []models.ProductVariant{{
			SKU:       sku,
			Size:      "42",
			Color:     "black",
			SalePrice: price,
			Weight:    0.5,
			Stock:     stock,
		}},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product.Variants[0]
}

// recorderSender captures outbound OTP messages instead of dispatching them.
type recorderSender struct {
	mu   sync.Mutex
	sent []recordedMessage
}

type recordedMessage struct {
	Target  string
	Subject string
	Body    string
}

func (r *recorderSender) Send(target, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, recordedMessage{Target: target, Subject: subject, Body: body})
	return nil
}

func (r *recorderSender) last(t *testing.T) recordedMessage {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		t.Fatal("no message was sent")
	}
	return r.sent[len(r.sent)-1]
}

// codeFromBody pulls the 6-digit code out of the message text.
func codeFromBody(t *testing.T, body string) string {
	t.Helper()
	for i := 0; i+6 <= len(body); i++ {
		candidate := body[i : i+6]
		digits := true
		for _, c := range candidate {
			if c < '0' || c > '9' {
				digits = false
				break
			}
		}
		if digits {
			return candidate
		}
	}
	t.Fatalf("no code found in %q", body)
	return ""
}
