// Package logger provides the diagnostic log shared by all components. A
// *Logger is handed to each component explicitly; there is no package-global
// state, which keeps components testable in isolation.
//
// Every message is written as a timestamped line to the diagnostic file.
// Console output goes through the verbosity level: errors and warnings on
// stderr/stdout as usual, info at normal verbosity and up, debug only at
// debug verbosity.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents console logging verbosity.
type Level int

const (
	// LevelQuiet suppresses all console output except errors
	LevelQuiet Level = iota
	// LevelNormal shows standard progress
	LevelNormal
	// LevelVerbose shows detailed information about each step
	LevelVerbose
	// LevelDebug shows all debugging information
	LevelDebug
)

// LevelFromString converts a string level name to Level.
func LevelFromString(level string) Level {
	switch strings.ToLower(level) {
	case "quiet", "q":
		return LevelQuiet
	case "normal", "n":
		return LevelNormal
	case "verbose", "v":
		return LevelVerbose
	case "debug", "d":
		return LevelDebug
	default:
		return LevelNormal
	}
}

// Logger writes timestamped severity lines to a file and colored lines to
// the console. Safe for use from a single process; the file is opened in
// append mode and flushed on Close.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	console Level
	now     func() time.Time
}

// New opens (or creates) the diagnostic log file at path.
func New(path string, console Level) (*Logger, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &Logger{file: f, console: console, now: time.Now}, nil
}

// Close flushes and closes the diagnostic file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Path-independent line format, matching one entry per call:
// 2006-01-02 15:04:05 - LEVEL - message
func (l *Logger) toFile(severity, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	fmt.Fprintf(l.file, "%s - %s - %s\n", l.now().Format("2006-01-02 15:04:05"), severity, msg)
}

// Debugf records a debug message. Console output only at debug verbosity.
func (l *Logger) Debugf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.toFile("DEBUG", msg)
	if l.console >= LevelDebug {
		fmt.Printf("\t%s\n", colored(msg, cyanColor))
	}
}

// Infof records an informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.toFile("INFO", msg)
	if l.console >= LevelNormal {
		fmt.Printf("%s\n", colored(msg, blueColor))
	}
}

// Warnf records a warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.toFile("WARNING", msg)
	if l.console >= LevelNormal {
		fmt.Printf("%s\n", colored(msg, yellowColor))
	}
}

// Errorf records an error. Errors always reach the console.
func (l *Logger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.toFile("ERROR", msg)
	fmt.Fprintf(os.Stderr, "%s\n", colored(msg, redColor))
}

// Successf records a success message, shown in green on the console.
func (l *Logger) Successf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.toFile("INFO", msg)
	if l.console >= LevelNormal {
		fmt.Printf("%s\n", colored(msg, greenColor))
	}
}
