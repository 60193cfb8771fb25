package game

// Store defines the contract for session storage.
//
// Implementations must make Get/Create/Remove atomic per user key: two
// concurrent Creates for the same user yield one session, and a Remove
// racing a Create never leaves the store inconsistent for that key.
type Store interface {
	// Get returns the user's active session, if any
	Get(userID int64) (*Session, bool)

	// Create stores a fresh session for the user and returns it with true.
	// If the user already has a session it is returned untouched with false.
	Create(userID int64) (*Session, bool)

	// Remove deletes the user's session; no-op when absent
	Remove(userID int64)

	// Len returns the number of active sessions
	Len() int
}
