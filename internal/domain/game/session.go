package game

import "sync"

// Target bounds for the guessing game.
const (
	MinTarget = 1
	MaxTarget = 100
)

// Outcome is the result of comparing a guess against the secret number.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// Session represents one user's in-progress guessing game. Updates are
// handled on separate goroutines, so the attempt counter is guarded;
// userID and target are set once at creation and never written again.
type Session struct {
	userID int64
	target int

	mu       sync.Mutex
	attempts int
}

// NewSession creates a session with the given secret number
func NewSession(userID int64, target int) *Session {
	return &Session{
		userID: userID,
		target: target,
	}
}

// Getters
func (s *Session) UserID() int64 { return s.userID }
func (s *Session) Target() int   { return s.target }

// Attempts returns the number of valid guesses recorded so far
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// RecordGuess counts one valid numeric guess and returns its outcome
// together with the attempt count including this guess. Outcome and count
// are taken under one lock so concurrent guesses never misreport the total.
// Invalid (non-numeric) input must not reach this method.
func (s *Session) RecordGuess(guess int) (Outcome, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts++
	switch {
	case guess < s.target:
		return TooLow, s.attempts
	case guess > s.target:
		return TooHigh, s.attempts
	default:
		return Correct, s.attempts
	}
}
