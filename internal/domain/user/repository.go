package user

import "context"

// Repository defines the contract for user persistence
type Repository interface {
	// Save persists a new user to storage
	Save(ctx context.Context, user *User) error

	// FindByTelegramID retrieves a user by their Telegram ID
	FindByTelegramID(ctx context.Context, telegramID TelegramID) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// GetAllUsers retrieves all users from storage
	GetAllUsers(ctx context.Context) ([]*User, error)

	// Count returns the number of registered users
	Count(ctx context.Context) (int, error)
}
