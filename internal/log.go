package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Prefix creates a consistent prefix for per-file loggers.
//
// i and n are the zero-based ordinal and expected count. name can be a local path or an S3 URI; only its base name
// shows up in the prefix.
func Prefix(i, n int, name string) string {
	return fmt.Sprintf(`[%d/%d] "%s" - `, i, n, truncateRight(filepath.Base(name), 30))
}

// NewLogger creates a logger to os.Stderr whose prefix comes from Prefix.
func NewLogger(i, n int, name string) *log.Logger {
	return log.New(os.Stderr, Prefix(i, n, name), 0)
}

// truncateRight keeps the first n runes of text, appending "..." only if truncation happens.
func truncateRight(text string, n int) string {
	rs := []rune(text)
	if len(rs) <= n {
		return text
	}
	return string(rs[:n]) + "..."
}
