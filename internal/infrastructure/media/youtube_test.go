package media

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		ext   string
		want  string
	}{
		{
			name:  "plain title",
			title: "My Video",
			ext:   ".mp4",
			want:  "My Video.mp4",
		},
		{
			name:  "path separators replaced",
			title: `AC/DC: Back <in> Black?`,
			ext:   ".m4a",
			want:  "AC_DC_ Back _in_ Black_.m4a",
		},
		{
			name:  "empty title gets a fallback",
			title: "",
			ext:   ".mp4",
			want:  "download.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayName(tt.title, tt.ext); got != tt.want {
				t.Errorf("displayName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestDisplayName_CapsLongTitles(t *testing.T) {
	title := strings.Repeat("a", 120)

	got := displayName(title, ".mp4")
	if utf8.RuneCountInString(got) != 50+len(".mp4") {
		t.Errorf("len = %d, want 50 runes plus extension", utf8.RuneCountInString(got))
	}
}
