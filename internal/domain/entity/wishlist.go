package entity

import "time"

// Wishlist is a named, owned collection referencing existing wishes.
type Wishlist struct {
	ID          string
	Name        string
	Description string
	Image       string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []Wish
}
