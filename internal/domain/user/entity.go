package user

import (
	"time"
)

// TelegramID is the user's Telegram identifier, the registry's primary key
type TelegramID int64

// User represents a registered chat participant
type User struct {
	telegramID   TelegramID
	username     string
	firstName    string
	lastName     string
	languageCode string
	createdAt    time.Time
	lastActive   time.Time
}

// NewUser creates a new user
func NewUser(telegramID TelegramID, username, firstName, lastName, languageCode string) *User {
	now := time.Now()
	return &User{
		telegramID:   telegramID,
		username:     username,
		firstName:    firstName,
		lastName:     lastName,
		languageCode: languageCode,
		createdAt:    now,
		lastActive:   now,
	}
}

// Restore rebuilds a user from stored values (used by the repository)
func Restore(telegramID TelegramID, username, firstName, lastName, languageCode string, createdAt, lastActive time.Time) *User {
	return &User{
		telegramID:   telegramID,
		username:     username,
		firstName:    firstName,
		lastName:     lastName,
		languageCode: languageCode,
		createdAt:    createdAt,
		lastActive:   lastActive,
	}
}

// Getters
func (u *User) TelegramID() TelegramID { return u.telegramID }
func (u *User) Username() string       { return u.username }
func (u *User) FirstName() string      { return u.firstName }
func (u *User) LastName() string       { return u.lastName }
func (u *User) LanguageCode() string   { return u.languageCode }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) LastActive() time.Time  { return u.lastActive }

// Touch updates the last active timestamp
func (u *User) Touch() {
	u.lastActive = time.Now()
}

// UpdateProfile updates user profile information
func (u *User) UpdateProfile(username, firstName, lastName, languageCode string) {
	u.username = username
	u.firstName = firstName
	u.lastName = lastName
	u.languageCode = languageCode
}
