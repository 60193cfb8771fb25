package game

import (
	"sync"
	"testing"
)

func TestSession_RecordGuess(t *testing.T) {
	tests := []struct {
		name  string
		guess int
		want  Outcome
	}{
		{name: "below target", guess: 30, want: TooLow},
		{name: "above target", guess: 70, want: TooHigh},
		{name: "far above range", guess: 200, want: TooHigh},
		{name: "exact", guess: 50, want: Correct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(1, 50)
			outcome, attempts := s.RecordGuess(tt.guess)
			if outcome != tt.want {
				t.Errorf("RecordGuess(%d) = %v, want %v", tt.guess, outcome, tt.want)
			}
			if attempts != 1 {
				t.Errorf("attempts = %d, want 1", attempts)
			}
		})
	}
}

func TestSession_AttemptsAccumulate(t *testing.T) {
	s := NewSession(1, 50)

	s.RecordGuess(10)
	s.RecordGuess(90)
	_, attempts := s.RecordGuess(50)

	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if s.Target() != 50 {
		t.Errorf("target changed to %d", s.Target())
	}
}

// Guesses arrive on separate goroutines (one per update); none may be lost
// and every reported count must be unique. Run with -race.
func TestSession_ConcurrentGuesses(t *testing.T) {
	s := NewSession(1, 50)

	const guessers = 50
	counts := make([]int, guessers)

	var wg sync.WaitGroup
	for i := 0; i < guessers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, counts[i] = s.RecordGuess(0)
		}(i)
	}
	wg.Wait()

	if got := s.Attempts(); got != guessers {
		t.Errorf("Attempts() = %d, want %d", got, guessers)
	}

	seen := make(map[int]bool, guessers)
	for _, c := range counts {
		if seen[c] {
			t.Fatalf("attempt count %d reported twice", c)
		}
		seen[c] = true
	}
}
