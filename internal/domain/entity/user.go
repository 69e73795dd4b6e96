package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system: one member of the household.
// Users are created at registration and never updated or deleted afterwards.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Username  string    // The login identifier, unique across the household.
	Email     string    // The user's contact email, also unique.
	CreatedAt time.Time // Timestamp of when this account was created.
}

// Credential is the minimal projection used by login: the user id plus the
// stored password digest. The general user lookup paths never expose the hash.
type Credential struct {
	UserID       uuid.UUID
	PasswordHash string
}
