package usecases

import (
	"fmt"
	"strconv"
	"strings"

	"sky-bot/internal/domain/game"
)

// GameUseCase runs the number-guessing game on top of a session store
type GameUseCase struct {
	sessions game.Store
}

// NewGameUseCase creates a new game use case
func NewGameUseCase(sessions game.Store) *GameUseCase {
	return &GameUseCase{sessions: sessions}
}

// InGame reports whether the user has an unfinished game
func (uc *GameUseCase) InGame(userID int64) bool {
	_, ok := uc.sessions.Get(userID)
	return ok
}

// Start begins a game for the user. An already running game is never reset;
// it is re-announced instead.
func (uc *GameUseCase) Start(userID int64) string {
	session, created := uc.sessions.Create(userID)
	if !created {
		return fmt.Sprintf(
			"🎮 You already have a game going (%d guesses so far). Send a number between %d-%d!",
			session.Attempts(), game.MinTarget, game.MaxTarget)
	}

	return fmt.Sprintf("🎮 I've chosen a number between %d-%d. Guess it!", game.MinTarget, game.MaxTarget)
}

// Guess evaluates a text message as a guess against the user's session.
// Non-numeric input leaves the session untouched.
func (uc *GameUseCase) Guess(userID int64, text string) string {
	session, ok := uc.sessions.Get(userID)
	if !ok {
		return "🎮 No game in progress. Use /game to start one!"
	}

	guess, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return "Please send a number!"
	}

	outcome, attempts := session.RecordGuess(guess)
	switch outcome {
	case game.TooLow:
		return "📈 Too low! Try higher."
	case game.TooHigh:
		return "📉 Too high! Try lower."
	}

	uc.sessions.Remove(userID)
	return fmt.Sprintf("🎉 Correct! You got it in %d attempts!", attempts)
}

// ActiveGames returns the number of games currently in progress
func (uc *GameUseCase) ActiveGames() int {
	return uc.sessions.Len()
}
