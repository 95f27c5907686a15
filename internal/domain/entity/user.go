// Package entity contains the core business objects of the directory,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a directory account. It owns its telephones; they are created with
// the user and removed with it.
type User struct {
	ID           uuid.UUID    // Opaque unique identifier.
	Name         string       // Display name.
	Email        string       // Login identifier, unique, stored exactly as provided.
	PasswordHash string       // Argon2id PHC string. Never leaves the service boundary.
	Telephones   []*Telephone // At least one for every persisted user.
	CreatedAt    time.Time    // Set by the persistence layer on insert.
	UpdatedAt    time.Time    // Set by the persistence layer on every write.
}
