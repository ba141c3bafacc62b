package entity

import (
	"time"

	"github.com/wishdrop/wishdrop-backend/pkg/money"
)

// Offer is a pledge of money by one user toward another user's wish.
// Offers are immutable once created: no update or delete path exists.
type Offer struct {
	ID        string
	UserID    string
	ItemID    string
	Amount    money.Amount
	Hidden    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated by read paths that join the pledger.
	User *User
}
