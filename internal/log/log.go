// Package log provides leveled key=value logging for redline. Logging is a
// no-op until Init or InitFile is called, so library callers pay nothing
// unless the host application opts in.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level, defaulting to warn.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Category groups related log messages.
type Category string

const (
	CatScan    Category = "scan"    // Word boundary scanning
	CatCorrect Category = "correct" // Replacement engine
	CatSpell   Category = "spell"   // Spell provider
	CatSession Category = "session" // Document session store
	CatConfig  Category = "config"  // Configuration loading
)

type logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
}

var active *logger

// Init directs log output to w at the given minimum level.
func Init(w io.Writer, min Level) {
	active = &logger{w: w, minLevel: min}
}

// InitFile opens (appending) the given path for log output. The returned
// cleanup closes the file.
func InitFile(path string, min Level) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	active = &logger{w: f, minLevel: min}
	return func() { _ = f.Close() }, nil
}

// Reset disables logging. Intended for tests.
func Reset() {
	active = nil
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	emit(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	emit(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	emit(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	emit(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with its error value attached.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	}
	emit(LevelError, cat, msg, fields...)
}

func emit(level Level, cat Category, msg string, fields ...any) {
	l := active
	if l == nil || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Format: 2026-08-30T10:45:00 [WARN] [correct] message key=value
	entry := fmt.Sprintf("%s [%s] [%s] %s",
		time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	fmt.Fprintln(l.w, entry)
}
