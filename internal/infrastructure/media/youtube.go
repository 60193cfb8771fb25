package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	youtube "github.com/kkdai/youtube/v2"
)

// Mode selects which stream of a video to download
type Mode string

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
)

// Downloader fetches YouTube streams to local files
type Downloader struct {
	client      youtube.Client
	downloadDir string
}

// NewDownloader creates a YouTube download adapter writing into downloadDir
func NewDownloader(downloadDir string) *Downloader {
	return &Downloader{downloadDir: downloadDir}
}

// Download fetches the video's stream for the given mode and returns the
// local file path and a display name. The caller removes the file after use.
func (d *Downloader) Download(ctx context.Context, rawURL string, mode Mode) (string, string, error) {
	video, err := d.client.GetVideoContext(ctx, rawURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch video info: %w", err)
	}

	var formats youtube.FormatList
	ext := ".mp4"
	if mode == ModeAudio {
		formats = video.Formats.Type("audio")
		ext = ".m4a"
	} else {
		// Progressive mp4 streams carry audio and video together
		formats = video.Formats.Type("video/mp4").WithAudioChannels()
	}
	if len(formats) == 0 {
		return "", "", errors.New("no suitable stream found")
	}
	formats.Sort()

	stream, _, err := d.client.GetStreamContext(ctx, video, &formats[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to open stream: %w", err)
	}
	defer stream.Close()

	if err := os.MkdirAll(d.downloadDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create download dir: %w", err)
	}

	name := displayName(video.Title, ext)
	path := filepath.Join(d.downloadDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, stream); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to download stream: %w", err)
	}

	return path, name, nil
}

// displayName builds a filesystem-safe file name from the video title,
// capped at 50 runes before the extension
func displayName(title, ext string) string {
	title = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, title)

	runes := []rune(title)
	if len(runes) > 50 {
		title = string(runes[:50])
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = "download"
	}
	return title + ext
}
