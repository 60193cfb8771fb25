package usecases

import (
	"context"
	"fmt"

	"sky-bot/internal/domain/user"
)

// UserUseCase handles the user registry
type UserUseCase struct {
	userRepo user.Repository
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(userRepo user.Repository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// GetOrCreateUser gets an existing user or registers a new one
func (uc *UserUseCase) GetOrCreateUser(
	ctx context.Context,
	telegramID user.TelegramID,
	username, firstName, lastName, languageCode string,
) (*user.User, error) {
	existing, err := uc.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if existing != nil {
		existing.Touch()
		existing.UpdateProfile(username, firstName, lastName, languageCode)

		if err := uc.userRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		return existing, nil
	}

	newUser := user.NewUser(telegramID, username, firstName, lastName, languageCode)
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to save new user: %w", err)
	}

	return newUser, nil
}

// ListAll returns every registered user, the broadcast audience
func (uc *UserUseCase) ListAll(ctx context.Context) ([]*user.User, error) {
	users, err := uc.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Count returns the number of registered users
func (uc *UserUseCase) Count(ctx context.Context) (int, error) {
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
