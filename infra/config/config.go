package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds application-level configuration.
type Config struct {
	ServerURL     string // e.g. "http://localhost:5000"
	ClipboardMode string // "system" or "osc52"
	LogPath       string // Empty disables logging
	LogLevel      zerolog.Level
}

const (
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// Load reads configuration from environment variables.
//
//	THREADREADER_SERVER     — thread server base URL (default: http://localhost:5000)
//	THREADREADER_CLIPBOARD  — "system" or "osc52" (default: "system")
//	THREADREADER_LOG        — path of the log file (default: logging disabled)
//	THREADREADER_LOG_LEVEL  — zerolog level name (default: "info")
func Load() (Config, error) {
	server := strings.TrimSpace(os.Getenv("THREADREADER_SERVER"))
	if server == "" {
		server = "http://localhost:5000"
	}
	parsed, err := url.Parse(server)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid THREADREADER_SERVER: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid THREADREADER_SERVER: only http and https are allowed")
	}
	server = strings.TrimRight(parsed.String(), "/")

	mode := strings.ToLower(strings.TrimSpace(os.Getenv("THREADREADER_CLIPBOARD")))
	switch mode {
	case "":
		mode = ClipboardSystem
	case ClipboardSystem, ClipboardOSC52:
	default:
		return Config{}, fmt.Errorf("invalid THREADREADER_CLIPBOARD %q: want %s or %s", mode, ClipboardSystem, ClipboardOSC52)
	}

	level := zerolog.InfoLevel
	if raw := strings.TrimSpace(os.Getenv("THREADREADER_LOG_LEVEL")); raw != "" {
		level, err = zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return Config{}, fmt.Errorf("invalid THREADREADER_LOG_LEVEL: %w", err)
		}
	}

	return Config{
		ServerURL:     server,
		ClipboardMode: mode,
		LogPath:       strings.TrimSpace(os.Getenv("THREADREADER_LOG")),
		LogLevel:      level,
	}, nil
}
