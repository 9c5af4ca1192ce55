package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "vi-arena.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes slog and the standard logger to logs/vi-arena.log when debug is set
// and discards everything otherwise, since the terminal owns stdout and stderr
// Returns the open log file, nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool, matchID string) *os.File {
	if !debug {
		discardLogging()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		discardLogging()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		discardLogging()
		return nil
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler).With("match", matchID))

	// SetDefault redirects the standard logger through the handler, so SetOutput must follow it
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog renames an oversized log aside with a timestamp suffix
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	rotated := filepath.Join(filepath.Dir(path),
		fmt.Sprintf("vi-arena-%s.log", time.Now().Format("20060102-150405")))
	_ = os.Rename(path, rotated)
}

// discardLogging silences both loggers; slog first since SetDefault rewires the standard logger
func discardLogging() {
	slog.SetDefault(slog.New(slog.DiscardHandler))
	log.SetOutput(io.Discard)
}
