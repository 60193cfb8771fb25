package telegram

import (
	"context"
	"reflect"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type stubSessions struct {
	inGame map[int64]bool
}

func (s *stubSessions) InGame(userID int64) bool { return s.inGame[userID] }

// recorder counts handler invocations and captures the args it was given
type recorder struct {
	calls int
	args  []string
}

func (r *recorder) handle(ctx context.Context, update tgbotapi.Update, args []string) error {
	r.calls++
	r.args = args
	return nil
}

// messageUpdate builds an update the way the Bot API delivers it, including
// the bot_command entity for commands
func messageUpdate(userID int64, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
	}
	if strings.HasPrefix(text, "/") {
		cmdLen := len(text)
		if i := strings.Index(text, " "); i != -1 {
			cmdLen = i
		}
		msg.Entities = []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: cmdLen},
		}
	}
	return tgbotapi.Update{Message: msg}
}

func TestDispatcher_CommandRouting(t *testing.T) {
	sessions := &stubSessions{inGame: map[int64]bool{}}
	d := NewDispatcher(nil, sessions)

	game := &recorder{}
	unknown := &recorder{}
	d.Register("game", game.handle)
	d.OnUnknown(unknown.handle)

	if err := d.Dispatch(context.Background(), messageUpdate(1, "/game")); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if game.calls != 1 {
		t.Errorf("game handler calls = %d, want 1", game.calls)
	}

	if err := d.Dispatch(context.Background(), messageUpdate(1, "/bogus")); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if unknown.calls != 1 {
		t.Errorf("unknown handler calls = %d, want 1", unknown.calls)
	}
}

func TestDispatcher_CommandArgsSplit(t *testing.T) {
	d := NewDispatcher(nil, &stubSessions{inGame: map[int64]bool{}})

	whatsapp := &recorder{}
	d.Register("whatsapp", whatsapp.handle)

	update := messageUpdate(1, "/whatsapp +3155512345   hello   world")
	if err := d.Dispatch(context.Background(), update); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	want := []string{"+3155512345", "hello", "world"}
	if !reflect.DeepEqual(whatsapp.args, want) {
		t.Errorf("args = %v, want %v", whatsapp.args, want)
	}
}

func TestDispatcher_FreeTextPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		inGame    bool
		wantGuess int
		wantChat  int
	}{
		{name: "active session routes to the game", inGame: true, wantGuess: 1, wantChat: 0},
		{name: "no session routes to AI chat", inGame: false, wantGuess: 0, wantChat: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &stubSessions{inGame: map[int64]bool{1: tt.inGame}}
			d := NewDispatcher(nil, sessions)

			guess := &recorder{}
			chat := &recorder{}
			d.OnGuess(guess.handle)
			d.OnChat(chat.handle)

			if err := d.Dispatch(context.Background(), messageUpdate(1, "42")); err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if guess.calls != tt.wantGuess {
				t.Errorf("guess handler calls = %d, want %d", guess.calls, tt.wantGuess)
			}
			if chat.calls != tt.wantChat {
				t.Errorf("chat handler calls = %d, want %d", chat.calls, tt.wantChat)
			}
		})
	}
}

func TestDispatcher_AdminGate(t *testing.T) {
	tests := []struct {
		name             string
		userID           int64
		wantHandler      int
		wantUnauthorized int
	}{
		{name: "admin invokes the handler", userID: 100, wantHandler: 1},
		{name: "non-admin is denied", userID: 2, wantUnauthorized: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher([]int64{100}, &stubSessions{inGame: map[int64]bool{}})

			broadcast := &recorder{}
			denied := &recorder{}
			d.RegisterAdmin("broadcast", broadcast.handle)
			d.OnUnauthorized(denied.handle)

			update := messageUpdate(tt.userID, "/broadcast hi all")
			if err := d.Dispatch(context.Background(), update); err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if broadcast.calls != tt.wantHandler {
				t.Errorf("broadcast handler calls = %d, want %d", broadcast.calls, tt.wantHandler)
			}
			if denied.calls != tt.wantUnauthorized {
				t.Errorf("unauthorized handler calls = %d, want %d", denied.calls, tt.wantUnauthorized)
			}
		})
	}
}

func TestDispatcher_IgnoresNonMessageUpdates(t *testing.T) {
	d := NewDispatcher(nil, &stubSessions{inGame: map[int64]bool{}})

	chat := &recorder{}
	d.OnChat(chat.handle)

	if err := d.Dispatch(context.Background(), tgbotapi.Update{}); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if chat.calls != 0 {
		t.Errorf("chat handler calls = %d, want 0", chat.calls)
	}
}
