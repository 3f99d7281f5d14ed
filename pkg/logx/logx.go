package logx

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Level controls which messages are emitted
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.RWMutex
	level    = LevelInfo
	stdlog   = log.New(os.Stderr, "", log.LstdFlags)
	levelTag = map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
	}
)

// SetLevel sets the minimum level that will be logged
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput redirects log output (useful in tests)
func SetOutput(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	stdlog = l
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= level
}

func emit(l Level, msg string) {
	if !enabled(l) {
		return
	}
	mu.RLock()
	out := stdlog
	mu.RUnlock()
	out.Printf("[%s] %s", levelTag[l], msg)
}

func Debug(args ...any) { emit(LevelDebug, fmt.Sprint(args...)) }
func Info(args ...any)  { emit(LevelInfo, fmt.Sprint(args...)) }
func Warn(args ...any)  { emit(LevelWarn, fmt.Sprint(args...)) }
func Error(args ...any) { emit(LevelError, fmt.Sprint(args...)) }

func Debugf(format string, args ...any) { emit(LevelDebug, fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { emit(LevelInfo, fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { emit(LevelWarn, fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { emit(LevelError, fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits
func Fatal(args ...any) {
	emit(LevelError, fmt.Sprint(args...))
	os.Exit(1)
}

// Fatalf logs at error level and exits
func Fatalf(format string, args ...any) {
	emit(LevelError, fmt.Sprintf(format, args...))
	os.Exit(1)
}
