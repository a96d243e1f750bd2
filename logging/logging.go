// Package logging writes debug logs to a file. The terminal belongs to the
// dashboard, so nothing is ever logged to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	logger    atomic.Pointer[slog.Logger]
	debugMode atomic.Bool
)

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		debugMode.Store(false)
		logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// configure stdlib logger
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	Use(f, slog.LevelDebug)

	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// Use sends records at or above level to w.
func Use(w io.Writer, level slog.Level) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger.Store(slog.New(h).With("component", "airline-dash"))
	debugMode.Store(level <= slog.LevelDebug)
}

// IsDebugMode reports whether debug records are being written.
func IsDebugMode() bool { return debugMode.Load() }

func Debugf(format string, args ...any) { logger.Load().Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { logger.Load().Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { logger.Load().Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { logger.Load().Error(fmt.Sprintf(format, args...)) }
