// Package logging is the leveled logger shared by the pathplot packages.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

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
		return "<unknown Level>"
	}
}

// ParseLevel returns the level named by s, case insensitive.
func ParseLevel(s string) (Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

var currentLevel int32 = int32(LevelWarn)

var baseLogger = log.New(os.Stderr, "", log.Ltime)

// SetLevel sets the global log level.
func SetLevel(l Level) { atomic.StoreInt32(&currentLevel, int32(l)) }

// GetLevel returns the global log level.
func GetLevel() Level { return Level(atomic.LoadInt32(&currentLevel)) }

// SetOutput redirects every log line to w.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func logf(l Level, format string, args ...interface{}) {
	if GetLevel() > l {
		return
	}
	// a message without args may hold literal % characters
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", l, format)
		return
	}
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }
