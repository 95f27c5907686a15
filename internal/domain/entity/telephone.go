package entity

import "github.com/google/uuid"

const (
	// AreaCodeDigits is the exact length of a normalized area code.
	AreaCodeDigits = 2
	// NumberDigits is the exact length of a normalized subscriber number.
	NumberDigits = 11
)

// Telephone belongs to exactly one User.
type Telephone struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	AreaCode string // digits only
	Number   string // digits only
}
