package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sky-bot/internal/domain/user"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) user.Repository {
	return &userRepository{db: db}
}

// Save persists a new user to storage
func (r *userRepository) Save(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (telegram_id, username, first_name, last_name, language_code, created_at, last_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		int64(u.TelegramID()), u.Username(), u.FirstName(), u.LastName(),
		u.LanguageCode(), u.CreatedAt(), u.LastActive())
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// FindByTelegramID retrieves a user by their Telegram ID
func (r *userRepository) FindByTelegramID(ctx context.Context, telegramID user.TelegramID) (*user.User, error) {
	query := `
		SELECT telegram_id, username, first_name, last_name, language_code, created_at, last_active
		FROM users WHERE telegram_id = ?
	`

	var tgID int64
	var username, firstName, lastName, languageCode string
	var createdAt, lastActive time.Time

	err := r.db.QueryRowContext(ctx, query, int64(telegramID)).Scan(
		&tgID, &username, &firstName, &lastName, &languageCode, &createdAt, &lastActive)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by Telegram ID: %w", err)
	}

	return user.Restore(user.TelegramID(tgID), username, firstName, lastName, languageCode, createdAt, lastActive), nil
}

// Update updates an existing user
func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET username = ?, first_name = ?, last_name = ?, language_code = ?, last_active = ?
		WHERE telegram_id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		u.Username(), u.FirstName(), u.LastName(), u.LanguageCode(), u.LastActive(), int64(u.TelegramID()))
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// GetAllUsers retrieves all users from storage
func (r *userRepository) GetAllUsers(ctx context.Context) ([]*user.User, error) {
	query := `
		SELECT telegram_id, username, first_name, last_name, language_code, created_at, last_active
		FROM users
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var tgID int64
		var username, firstName, lastName, languageCode string
		var createdAt, lastActive time.Time

		if err := rows.Scan(&tgID, &username, &firstName, &lastName, &languageCode, &createdAt, &lastActive); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		users = append(users, user.Restore(user.TelegramID(tgID), username, firstName, lastName, languageCode, createdAt, lastActive))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Count returns the number of registered users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
