package services

import (
	"testing"
	"time"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
)

func TestMigrateMergesCartQuantities(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "MIG-001", 50.00, 20)
	cart := NewCartService(db)
	sessions := NewSessionService(db)

	session, err := sessions.Create()
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	guest := models.GuestOwner(session.ID)
	user := models.UserOwner("user_1")

	if _, err := cart.AddItem(guest, variant.ID, 2); err != nil {
		t.Fatalf("guest add: %v", err)
	}
	if _, err := cart.AddItem(user, variant.ID, 1); err != nil {
		t.Fatalf("user add: %v", err)
	}

	if err := NewMigrationService(db).Migrate(session.ID, "user_1"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userItems, _ := cart.Get(user)
	if len(userItems) != 1 || userItems[0].Quantity != 3 {
		t.Errorf("user cart = %+v, want single row with quantity 3", userItems)
	}
	guestItems, _ := cart.Get(guest)
	if len(guestItems) != 0 {
		t.Errorf("guest cart rows = %d, want 0", len(guestItems))
	}
}

func TestMigrateRekeysDisjointItems(t *testing.T) {
	db := newTestDB(t)
	v1 := seedVariant(t, db, "MIG-002", 50.00, 20)
	v2 := seedVariant(t, db, "MIG-003", 60.00, 20)
	cart := NewCartService(db)
	sessions := NewSessionService(db)

	session, err := sessions.Create()
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	guest := models.GuestOwner(session.ID)
	user := models.UserOwner("user_1")

	if _, err := cart.AddItem(guest, v1.ID, 1); err != nil {
		t.Fatalf("guest add: %v", err)
	}
	if _, err := cart.AddItem(user, v2.ID, 1); err != nil {
		t.Fatalf("user add: %v", err)
	}

	if err := NewMigrationService(db).Migrate(session.ID, "user_1"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userItems, _ := cart.Get(user)
	if len(userItems) != 2 {
		t.Errorf("user cart rows = %d, want 2", len(userItems))
	}
}

func TestMigrateDedupesWishlist(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "MIG-004", 50.00, 20)
	wishlist := NewWishlistService(db)
	sessions := NewSessionService(db)

	session, err := sessions.Create()
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	guest := models.GuestOwner(session.ID)
	user := models.UserOwner("user_1")

	if _, err := wishlist.Add(guest, variant.ProductID, &variant.ID); err != nil {
		t.Fatalf("guest add: %v", err)
	}
	if _, err := wishlist.Add(user, variant.ProductID, &variant.ID); err != nil {
		t.Fatalf("user add: %v", err)
	}

	if err := NewMigrationService(db).Migrate(session.ID, "user_1"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	userItems, _ := wishlist.Get(user)
	if len(userItems) != 1 {
		t.Errorf("user wishlist rows = %d, want 1", len(userItems))
	}
	var total int64
	db.Model(&models.WishlistItem{}).Count(&total)
	if total != 1 {
		t.Errorf("total wishlist rows = %d, want 1", total)
	}
}

func TestMigrateInvalidatesSessionAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "MIG-005", 50.00, 20)
	cart := NewCartService(db)
	sessions := NewSessionService(db)

	session, err := sessions.Create()
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	guest := models.GuestOwner(session.ID)
	user := models.UserOwner("user_1")

	if _, err := cart.AddItem(guest, variant.ID, 2); err != nil {
		t.Fatalf("guest add: %v", err)
	}
	if !sessions.Validate(session.ID) {
		t.Fatal("fresh session should validate")
	}

	migrator := NewMigrationService(db)
	if err := migrator.Migrate(session.ID, "user_1"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if sessions.Validate(session.ID) {
		t.Error("migrated session still validates")
	}

	// A retried migration finds an empty guest scope and changes nothing.
	if err := migrator.Migrate(session.ID, "user_1"); err != nil {
		t.Fatalf("repeat migrate: %v", err)
	}
	userItems, _ := cart.Get(user)
	if len(userItems) != 1 || userItems[0].Quantity != 2 {
		t.Errorf("user cart after repeat = %+v, want single row with quantity 2", userItems)
	}
}

func TestSessionValidateExpired(t *testing.T) {
	db := newTestDB(t)
	sessions := NewSessionService(db)

	session := models.GuestSession{
		ID:        "guest_expired",
		CreatedAt: time.Now().Add(-100 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if sessions.Validate(session.ID) {
		t.Error("expired session should not validate")
	}
	if sessions.Validate("guest_unknown") {
		t.Error("unknown session should not validate")
	}
}
