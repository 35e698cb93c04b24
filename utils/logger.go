package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps debug|info|warn|error to a Level. Unknown names map to LevelInfo.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// Logger provides structured, leveled logging throughout the application.
// Everything goes to stderr so it never mixes with the prompts on stdout.
type Logger struct {
	level Level
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger
}

// NewLogger creates a Logger writing to stderr at the given level.
func NewLogger(level Level) *Logger {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo creates a Logger writing every level to w.
func NewLoggerTo(w io.Writer, level Level) *Logger {
	flags := 0
	return &Logger{
		level: level,
		info:  log.New(w, "", flags),
		warn:  log.New(w, "", flags),
		err:   log.New(w, "", flags),
		debug: log.New(w, "", flags),
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) Info(format string, args ...any) {
	if l.level > LevelInfo {
		return
	}
	l.info.Print(fmt.Sprintf("[%s] \033[32mINFO\033[0m  ", l.timestamp()) + fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	if l.level > LevelWarn {
		return
	}
	l.warn.Print(fmt.Sprintf("[%s] \033[33mWARN\033[0m  ", l.timestamp()) + fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Print(fmt.Sprintf("[%s] \033[31mERROR\033[0m ", l.timestamp()) + fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	if l.level > LevelDebug {
		return
	}
	l.debug.Print(fmt.Sprintf("[%s] \033[36mDEBUG\033[0m ", l.timestamp()) + fmt.Sprintf(format, args...))
}
