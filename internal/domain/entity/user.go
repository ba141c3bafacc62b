package entity

import (
	"time"
)

// Default profile values applied when a signup omits them.
const (
	DefaultAbout  = "Has not told anything about themselves yet"
	DefaultAvatar = "https://i.pravatar.cc/300"
)

// User is the account aggregate. Username and Email are unique and stored
// lowercased; Password holds a bcrypt hash and is never serialized.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	About     string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
