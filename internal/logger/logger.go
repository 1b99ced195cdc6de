// Package logger holds the library-wide structured logger.
package logger

import (
	"log/slog"
	"sync/atomic"
)

var discard = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(discard)
}

// L returns the active logger. It discards everything until Set is called.
func L() *slog.Logger {
	return current.Load()
}

// Set replaces the active logger. A nil logger restores the discarding one.
func Set(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}
