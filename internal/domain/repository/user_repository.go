// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"servicehub/internal/domain/entity"
	"servicehub/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmailOrPhone retrieves the oldest user whose email equals email or whose phone equals phone.
	// Returns ErrUserNotFound when neither key matches.
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.User, error)

	// Create persists a new user entity to the storage and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
