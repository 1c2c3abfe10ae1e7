package models

type OwnerType string

const (
	OwnerTypeUser  OwnerType = "user"
	OwnerTypeGuest OwnerType = "guest"
)

// Owner identifies who holds a cart or wishlist row: an authenticated user
// or an anonymous guest session, never both at once. The migration routine
// is the only writer allowed to flip a row from guest to user.
type Owner struct {
	OwnerType OwnerType `gorm:"type:VARCHAR(10);not null;index" json:"owner_type"`
	OwnerID   string    `gorm:"not null;index" json:"owner_id"`
}

func UserOwner(userID string) Owner {
	return Owner{OwnerType: OwnerTypeUser, OwnerID: userID}
}

func GuestOwner(sessionID string) Owner {
	return Owner{OwnerType: OwnerTypeGuest, OwnerID: sessionID}
}
