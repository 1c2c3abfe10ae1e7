package services

import (
	"errors"
	"testing"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
)

func TestCartAddItemUpsertsOnRepeat(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "RUN-001", 99.90, 10)
	cart := NewCartService(db)
	owner := models.GuestOwner("guest_abc")

	if _, err := cart.AddItem(owner, variant.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	item, err := cart.AddItem(owner, variant.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if item.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", item.Quantity)
	}

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	if count != 1 {
		t.Errorf("cart rows = %d, want 1", count)
	}
}

func TestCartAddItemFreezesPrice(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "RUN-002", 120.00, 5)
	cart := NewCartService(db)
	owner := models.UserOwner("user_1")

	item, err := cart.AddItem(owner, variant.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.UnitPrice != 120.00 {
		t.Fatalf("unit price = %v, want 120.00", item.UnitPrice)
	}

	// Reprice the variant; the cart row keeps the add-time snapshot.
	if err := db.Model(&models.ProductVariant{}).
		Where("id = ?", variant.ID).Update("sale_price", 150.00).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	items, err := cart.Get(owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if items[0].UnitPrice != 120.00 {
		t.Errorf("snapshot price = %v, want 120.00", items[0].UnitPrice)
	}
	if items[0].Variant.SalePrice != 150.00 {
		t.Errorf("live price = %v, want 150.00", items[0].Variant.SalePrice)
	}
}

func TestCartAddItemRejectsOverStock(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "RUN-003", 80.00, 3)
	cart := NewCartService(db)
	owner := models.GuestOwner("guest_abc")

	if _, err := cart.AddItem(owner, variant.ID, 2); err != nil {
		t.Fatalf("add within stock: %v", err)
	}
	_, err := cart.AddItem(owner, variant.ID, 2)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}

	// The failed add must not have touched the existing row.
	items, _ := cart.Get(owner)
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Errorf("cart = %+v, want single row with quantity 2", items)
	}
}

func TestCartUpdateQuantityScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "RUN-004", 60.00, 10)
	cart := NewCartService(db)
	owner := models.UserOwner("user_1")

	item, err := cart.AddItem(owner, variant.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := cart.UpdateQuantity(models.UserOwner("user_2"), item.ID, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign owner err = %v, want ErrNotFound", err)
	}

	updated, err := cart.UpdateQuantity(owner, item.ID, 4)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", updated.Quantity)
	}
}

func TestCartRemoveItemIdempotent(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "RUN-005", 60.00, 10)
	cart := NewCartService(db)
	owner := models.GuestOwner("guest_x")

	item, err := cart.AddItem(owner, variant.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.RemoveItem(owner, item.ID); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if err := cart.RemoveItem(owner, item.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	items, _ := cart.Get(owner)
	if len(items) != 0 {
		t.Errorf("cart rows = %d, want 0", len(items))
	}
}

func TestCartOwnersAreIsolated(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "RUN-006", 60.00, 10)
	cart := NewCartService(db)

	if _, err := cart.AddItem(models.GuestOwner("guest_a"), variant.ID, 1); err != nil {
		t.Fatalf("guest add: %v", err)
	}
	if _, err := cart.AddItem(models.UserOwner("user_a"), variant.ID, 2); err != nil {
		t.Fatalf("user add: %v", err)
	}

	guestItems, _ := cart.Get(models.GuestOwner("guest_a"))
	userItems, _ := cart.Get(models.UserOwner("user_a"))
	if len(guestItems) != 1 || guestItems[0].Quantity != 1 {
		t.Errorf("guest cart = %+v", guestItems)
	}
	if len(userItems) != 1 || userItems[0].Quantity != 2 {
		t.Errorf("user cart = %+v", userItems)
	}
}
