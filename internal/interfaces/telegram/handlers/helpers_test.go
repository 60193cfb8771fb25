package handlers

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{
			name: "short text untouched",
			text: "hello",
			max:  10,
			want: "hello",
		},
		{
			name: "exact length untouched",
			text: "hello",
			max:  5,
			want: "hello",
		},
		{
			name: "long text cut",
			text: "hello world",
			max:  5,
			want: "hello",
		},
		{
			name: "multibyte runes counted as one",
			text: "héllo wörld",
			max:  5,
			want: "héllo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	text := strings.Repeat("🤖", maxReplyLength+10)

	got := truncate(text, maxReplyLength)
	if !utf8.ValidString(got) {
		t.Error("truncate produced invalid UTF-8")
	}
	if utf8.RuneCountInString(got) != maxReplyLength {
		t.Errorf("rune count = %d, want %d", utf8.RuneCountInString(got), maxReplyLength)
	}
}
