// Package rxlog is a tiny log/slog wrapper used for the component runtime's
// and app loop's internal diagnostics. It never writes to stdout/stderr:
// those are the alternate screen while the app is running, and writing to
// them would corrupt the display the way the teacher's backend avoids any
// print outside Show(). Output goes to whatever io.Writer SetOutput is
// given; by default it is discarded.
package rxlog

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

var (
	mu     sync.Mutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// SetOutput redirects all subsequent logging to w (typically a file
// handle); nil restores the discarding default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	logger = slog.New(slog.NewTextHandler(w, nil))
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func Warnf(format string, args ...interface{}) {
	current().Warn(fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...interface{}) {
	current().Error(fmt.Sprintf(format, args...))
}

func Infof(format string, args ...interface{}) {
	current().Info(fmt.Sprintf(format, args...))
}
