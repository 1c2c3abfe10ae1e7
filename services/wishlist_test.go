package services

import (
	"errors"
	"testing"

	"github.com/Umar-Zansphere/shoeShop-sub001/models"
)

func TestWishlistAddDeduplicates(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "WL-001", 75.00, 5)
	wishlist := NewWishlistService(db)
	owner := models.UserOwner("user_1")

	if _, err := wishlist.Add(owner, variant.ProductID, &variant.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := wishlist.Add(owner, variant.ProductID, &variant.ID); err != nil {
		t.Fatalf("duplicate add: %v", err)
	}

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	if count != 1 {
		t.Errorf("wishlist rows = %d, want 1", count)
	}
}

func TestWishlistAddWithoutVariantIsDistinct(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "WL-002", 75.00, 5)
	wishlist := NewWishlistService(db)
	owner := models.UserOwner("user_1")

	// Product-level wish and a sized wish are separate entries.
	if _, err := wishlist.Add(owner, variant.ProductID, nil); err != nil {
		t.Fatalf("product-level add: %v", err)
	}
	if _, err := wishlist.Add(owner, variant.ProductID, &variant.ID); err != nil {
		t.Fatalf("sized add: %v", err)
	}
	if _, err := wishlist.Add(owner, variant.ProductID, nil); err != nil {
		t.Fatalf("repeat product-level add: %v", err)
	}

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	if count != 2 {
		t.Errorf("wishlist rows = %d, want 2", count)
	}
}

func TestWishlistMoveToCart(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "WL-003", 75.00, 5)
	wishlist := NewWishlistService(db)
	owner := models.GuestOwner("guest_1")

	item, err := wishlist.Add(owner, variant.ProductID, &variant.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	cartItem, err := wishlist.MoveToCart(owner, item.ID, nil, 2)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if cartItem.Quantity != 2 || cartItem.VariantID != variant.ID {
		t.Errorf("cart item = %+v", cartItem)
	}

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	if count != 0 {
		t.Errorf("wishlist rows after move = %d, want 0", count)
	}
}

func TestWishlistMoveToCartRollsBackOnOutOfStock(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "WL-004", 75.00, 1)
	wishlist := NewWishlistService(db)
	owner := models.UserOwner("user_1")

	item, err := wishlist.Add(owner, variant.ProductID, &variant.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := wishlist.MoveToCart(owner, item.ID, nil, 5); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}

	// Neither side moved: wishlist row survives, cart stays empty.
	var wishCount, cartCount int64
	db.Model(&models.WishlistItem{}).Count(&wishCount)
	db.Model(&models.CartItem{}).Count(&cartCount)
	if wishCount != 1 || cartCount != 0 {
		t.Errorf("wishlist=%d cart=%d, want 1 and 0", wishCount, cartCount)
	}
}

func TestWishlistMoveToCartRequiresVariant(t *testing.T) {
	db := newTestDB(t)
	variant := seedVariant(t, db, "WL-005", 75.00, 5)
	wishlist := NewWishlistService(db)
	owner := models.UserOwner("user_1")

	item, err := wishlist.Add(owner, variant.ProductID, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := wishlist.MoveToCart(owner, item.ID, nil, 1); err == nil {
		t.Fatal("expected error moving a product-level wish without a variant")
	}

	// The override selects the size at move time.
	cartItem, err := wishlist.MoveToCart(owner, item.ID, &variant.ID, 1)
	if err != nil {
		t.Fatalf("move with override: %v", err)
	}
	if cartItem.VariantID != variant.ID {
		t.Errorf("variant = %d, want %d", cartItem.VariantID, variant.ID)
	}
}
