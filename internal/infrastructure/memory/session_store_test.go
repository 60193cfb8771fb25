package memory

import (
	"sync"
	"testing"

	"sky-bot/internal/domain/game"
)

func TestSessionStore_Create(t *testing.T) {
	store := NewSessionStore()

	session, created := store.Create(42)
	if !created {
		t.Fatal("Create() on empty store reported created=false")
	}
	if session.Attempts() != 0 {
		t.Errorf("new session attempts = %d, want 0", session.Attempts())
	}
	if target := session.Target(); target < game.MinTarget || target > game.MaxTarget {
		t.Errorf("target = %d, want within [%d,%d]", target, game.MinTarget, game.MaxTarget)
	}

	got, ok := store.Get(42)
	if !ok || got != session {
		t.Errorf("Get() = %v, %v; want stored session", got, ok)
	}
}

func TestSessionStore_CreateIsIdempotent(t *testing.T) {
	store := NewSessionStore()

	first, _ := store.Create(7)
	first.RecordGuess(first.Target() + 1)

	second, created := store.Create(7)
	if created {
		t.Error("second Create() reported created=true")
	}
	if second != first {
		t.Error("second Create() returned a different session")
	}
	if second.Attempts() != 1 {
		t.Errorf("attempts after re-create = %d, want 1", second.Attempts())
	}
}

func TestSessionStore_Remove(t *testing.T) {
	store := NewSessionStore()

	store.Create(1)
	store.Remove(1)

	if _, ok := store.Get(1); ok {
		t.Error("Get() found a session after Remove()")
	}

	// Removing an absent session is a no-op
	store.Remove(99)
}

func TestSessionStore_Len(t *testing.T) {
	store := NewSessionStore()

	store.Create(1)
	store.Create(2)
	store.Create(2)

	if got := store.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestSessionStore_ConcurrentCreateSameUser(t *testing.T) {
	store := NewSessionStore()

	const workers = 50
	results := make([]*game.Session, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			session, _ := store.Create(5)
			results[i] = session
		}(i)
	}
	wg.Wait()

	if store.Len() != 1 {
		t.Fatalf("Len() = %d after concurrent creates, want 1", store.Len())
	}
	for i, session := range results {
		if session != results[0] {
			t.Fatalf("worker %d got a different session", i)
		}
	}
}

func TestSessionStore_UsersAreIndependent(t *testing.T) {
	store := NewSessionStore()

	store.Create(1)
	b, _ := store.Create(2)

	store.Remove(1)

	if _, ok := store.Get(1); ok {
		t.Error("user 1 session survived Remove()")
	}
	got, ok := store.Get(2)
	if !ok || got != b {
		t.Error("user 2 session affected by user 1 Remove()")
	}
}
