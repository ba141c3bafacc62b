package entity

import (
	"time"

	"github.com/wishdrop/wishdrop-backend/pkg/money"
)

// Wish is a desired item with a target price and an accumulating raised
// amount. Invariant: 0 <= Raised <= Price, enforced by the pledge flow and
// backed by a CHECK constraint in the schema.
type Wish struct {
	ID          string
	Name        string
	Link        string
	Image       string
	Price       money.Amount
	Raised      money.Amount
	Description string
	Copied      int
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Populated by read paths that join relations.
	Owner  *User
	Offers []Offer
}

// Funded reports whether the wish has received any pledges. A funded wish
// cannot be deleted and its price cannot change.
func (w *Wish) Funded() bool { return w.Raised > 0 }

// FullyFunded reports whether the raised total reached the price.
func (w *Wish) FullyFunded() bool { return w.Raised >= w.Price }
