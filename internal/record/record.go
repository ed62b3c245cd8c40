// Package record keeps the append-only log of produced video identifiers,
// one id per line.
package record

import (
	"fmt"
	"os"
)

// Log appends video ids to a plain text file. The file is created on first
// append; a failed run never touches it.
type Log struct {
	path string
}

// New returns a Log writing to path.
func New(path string) *Log {
	return &Log{path: path}
}

// Append writes one video id as a single line.
func (l *Log) Append(videoID string) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open id record: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, videoID); err != nil {
		return fmt.Errorf("failed to append video id: %w", err)
	}
	return f.Sync()
}
