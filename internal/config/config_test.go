package config

import (
	"reflect"
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "single ID",
			raw:  "123456789",
			want: []int64{123456789},
		},
		{
			name: "multiple IDs with spaces",
			raw:  " 1 , 2 ,3",
			want: []int64{1, 2, 3},
		},
		{
			name: "trailing comma",
			raw:  "42,",
			want: []int64{42},
		},
		{
			name:    "non-numeric entry",
			raw:     "1,@admin",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAdminIDs(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAdminIDs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAdminIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_RequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() without BOT_TOKEN returned nil error")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DB_PATH", "")
	t.Setenv("DOWNLOAD_DIR", "")
	t.Setenv("ADMIN_IDS", "10,20")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "sky_bot.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if cfg.DownloadDir != "downloads" {
		t.Errorf("DownloadDir = %q, want default", cfg.DownloadDir)
	}
	if !reflect.DeepEqual(cfg.AdminIDs, []int64{10, 20}) {
		t.Errorf("AdminIDs = %v, want [10 20]", cfg.AdminIDs)
	}
}
