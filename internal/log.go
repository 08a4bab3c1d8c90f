package internal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped run details to a log file alongside the
// progress output printed to stdout.
type Logger struct {
	mu sync.Mutex
	f  *os.File
}

func NewLogger(path string) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Logger{f: f}, nil
}

func (l *Logger) Log(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.f, time.Now().Format("2006-01-02 15:04:05")+" "+format+"\n", args...)
}

func (l *Logger) Close() error {
	return l.f.Close()
}
