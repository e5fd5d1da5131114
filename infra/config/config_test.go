package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	t.Setenv("THREADREADER_SERVER", "https://threads.example/")
	t.Setenv("THREADREADER_CLIPBOARD", "OSC52")
	t.Setenv("THREADREADER_LOG", "/tmp/threadreader.log")
	t.Setenv("THREADREADER_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "https://threads.example" {
		t.Fatalf("server must be normalized: %q", cfg.ServerURL)
	}
	if cfg.ClipboardMode != ClipboardOSC52 || cfg.LogPath != "/tmp/threadreader.log" || cfg.LogLevel != zerolog.DebugLevel {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("THREADREADER_SERVER", "")
	t.Setenv("THREADREADER_CLIPBOARD", "")
	t.Setenv("THREADREADER_LOG", "")
	t.Setenv("THREADREADER_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := Config{
		ServerURL:     "http://localhost:5000",
		ClipboardMode: ClipboardSystem,
		LogLevel:      zerolog.InfoLevel,
	}
	if cfg != want {
		t.Fatalf("unexpected defaults got=%#v want=%#v", cfg, want)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "relative server", key: "THREADREADER_SERVER", val: "/process_thread"},
		{name: "ftp server", key: "THREADREADER_SERVER", val: "ftp://files.local"},
		{name: "unknown clipboard", key: "THREADREADER_CLIPBOARD", val: "pbcopy"},
		{name: "unknown level", key: "THREADREADER_LOG_LEVEL", val: "loud"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("THREADREADER_SERVER", "")
			t.Setenv("THREADREADER_CLIPBOARD", "")
			t.Setenv("THREADREADER_LOG_LEVEL", "")
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}
