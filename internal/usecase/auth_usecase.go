// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// RegistrationCode is the household invite code; registration is refused
// without the right one.
type RegisterInput struct {
	Username         string
	Email            string
	Password         string
	RegistrationCode string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the signed token plus the account it identifies.
// Registration and login produce the same shape.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
