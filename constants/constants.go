package constants

import (
	"log/slog"
	"os"
	"strings"
)

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetLogLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Standard MIDI File layout used for exports.
const (
	TicksPerQuarter = 960
	DrumChannel     = 9
)

// MaxRequestBytes caps HTTP request bodies.
const MaxRequestBytes = 1 << 20

// Upper bounds accepted for user supplied params.
const (
	MaxBars = 512
	MaxBPM  = 300
)
