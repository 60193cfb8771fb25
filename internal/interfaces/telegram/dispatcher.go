package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandlerFunc is a function that handles a Telegram update. For commands,
// args holds the command arguments, already split and trimmed; handlers
// validate argument count and shape themselves.
type HandlerFunc func(ctx context.Context, update tgbotapi.Update, args []string) error

// SessionChecker reports whether a user has an unfinished game
type SessionChecker interface {
	InGame(userID int64) bool
}

// Dispatcher routes incoming messages to exactly one handler. Commands go to
// their registered handler, with admin commands gated by the allow-list.
// Free text goes to the game handler when the sender has an active session,
// and to the chat handler otherwise.
type Dispatcher struct {
	handlers       map[string]HandlerFunc
	adminOnly      map[string]bool
	admins         map[int64]struct{}
	sessions       SessionChecker
	onGuess        HandlerFunc
	onChat         HandlerFunc
	onUnknown      HandlerFunc
	onUnauthorized HandlerFunc
}

// NewDispatcher creates a dispatcher with the given admin allow-list
func NewDispatcher(adminIDs []int64, sessions SessionChecker) *Dispatcher {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Dispatcher{
		handlers:  make(map[string]HandlerFunc),
		adminOnly: make(map[string]bool),
		admins:    admins,
		sessions:  sessions,
	}
}

// Register registers a handler for a command
func (d *Dispatcher) Register(command string, handler HandlerFunc) {
	d.handlers[command] = handler
}

// RegisterAdmin registers a handler for a command restricted to the allow-list
func (d *Dispatcher) RegisterAdmin(command string, handler HandlerFunc) {
	d.handlers[command] = handler
	d.adminOnly[command] = true
}

// OnGuess sets the handler for free text from users with an active game
func (d *Dispatcher) OnGuess(handler HandlerFunc) { d.onGuess = handler }

// OnChat sets the handler for free text from users without a game
func (d *Dispatcher) OnChat(handler HandlerFunc) { d.onChat = handler }

// OnUnknown sets the handler for unrecognized commands
func (d *Dispatcher) OnUnknown(handler HandlerFunc) { d.onUnknown = handler }

// OnUnauthorized sets the handler for admin commands from non-admins
func (d *Dispatcher) OnUnauthorized(handler HandlerFunc) { d.onUnauthorized = handler }

// IsAdmin reports whether the user is on the admin allow-list
func (d *Dispatcher) IsAdmin(userID int64) bool {
	_, ok := d.admins[userID]
	return ok
}

// Dispatch routes a message update to its handler
func (d *Dispatcher) Dispatch(ctx context.Context, update tgbotapi.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}

	if msg.IsCommand() {
		command := msg.Command()
		handler, exists := d.handlers[command]
		if !exists {
			return d.call(d.onUnknown, ctx, update, nil)
		}
		if d.adminOnly[command] && !d.IsAdmin(msg.From.ID) {
			return d.call(d.onUnauthorized, ctx, update, nil)
		}
		return handler(ctx, update, strings.Fields(msg.CommandArguments()))
	}

	if msg.Text == "" {
		return nil
	}

	if d.sessions.InGame(msg.From.ID) {
		return d.call(d.onGuess, ctx, update, nil)
	}
	return d.call(d.onChat, ctx, update, nil)
}

func (d *Dispatcher) call(handler HandlerFunc, ctx context.Context, update tgbotapi.Update, args []string) error {
	if handler == nil {
		return nil
	}
	return handler(ctx, update, args)
}
