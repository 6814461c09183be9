// Package logger is a trimmed-down subsystem logger adapted from kaspad's
// infrastructure/logger. Each package in this module registers its own
// tagged subsystem logger (var log = logger.RegisterSubSystem("BCACHE"))
// and writes through a single process-wide Backend, which can optionally be
// pointed at a rotated log file via github.com/jrick/logrotate.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const (
	defaultThresholdKB = 100 * 1000
	defaultMaxRolls    = 8
)

type logWriter interface {
	io.WriteCloser
	LogLevel() Level
}

type logWriterWrap struct {
	io.WriteCloser
	logLevel Level
}

func (lw logWriterWrap) LogLevel() Level { return lw.logLevel }

// Backend is a logging backend. Subsystem Loggers created from it share one
// set of writers and write atomically to each of them.
type Backend struct {
	mtx     sync.Mutex
	writers []logWriter
}

// NewBackend creates a new, writer-less logger backend.
func NewBackend() *Backend {
	return &Backend{}
}

// AddLogFile adds a file the backend writes to at logLevel and above, using
// the default rotation settings (100MB per file, 8 rolls kept).
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddLogFileWithCustomRotator(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// AddLogFileWithCustomRotator is like AddLogFile but with explicit rotation
// settings.
func (b *Backend) AddLogFileWithCustomRotator(logFile string, logLevel Level, thresholdKB int64, maxRolls int) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return errors.Errorf("failed to create log directory: %+v", err)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Errorf("failed to create file rotator: %s", err)
	}
	b.mtx.Lock()
	b.writers = append(b.writers, logWriterWrap{WriteCloser: r, logLevel: logLevel})
	b.mtx.Unlock()
	return nil
}

// AddWriter adds an arbitrary io.WriteCloser as a sink at logLevel.
func (b *Backend) AddWriter(w io.WriteCloser, logLevel Level) {
	b.mtx.Lock()
	b.writers = append(b.writers, logWriterWrap{WriteCloser: w, logLevel: logLevel})
	b.mtx.Unlock()
}

// Close closes every writer the backend owns (e.g. flushing rotated files).
func (b *Backend) Close() {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, w := range b.writers {
		_ = w.Close()
	}
}

func (b *Backend) write(level Level, line string) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	if len(b.writers) == 0 {
		fmt.Fprint(os.Stderr, line)
		return
	}
	for _, w := range b.writers {
		if level >= w.LogLevel() {
			_, _ = io.WriteString(w, line)
		}
	}
}

// Logger is a tagged, leveled front-end onto a Backend.
type Logger struct {
	level   atomic.Uint32
	tag     string
	backend *Backend
}

// SetLevel sets the minimum level this logger forwards to its backend.
func (l *Logger) SetLevel(level Level) { l.level.Store(uint32(level)) }

// Level returns the logger's current minimum level.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.backend.write(level, fmt.Sprintf("%s: %s: %s\n", level, l.tag, msg))
}

// Tracef logs at trace level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.log(LevelTrace, format, args...) }

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.log(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.log(LevelWarn, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(LevelError, format, args...) }

var (
	defaultBackend = NewBackend()

	registryMtx sync.Mutex
	registry    = map[string]*Logger{}
)

// DefaultBackend returns the process-wide Backend subsystem loggers write
// through unless the caller registers file sinks on it.
func DefaultBackend() *Backend { return defaultBackend }

// RegisterSubSystem returns the Logger for tag, creating it at LevelInfo the
// first time it's requested. Subsequent calls with the same tag return the
// same *Logger, so every package-level `var log = logger.RegisterSubSystem(...)`
// in the module shares one configurable instance per tag.
func RegisterSubSystem(tag string) *Logger {
	registryMtx.Lock()
	defer registryMtx.Unlock()
	if l, ok := registry[tag]; ok {
		return l
	}
	l := &Logger{tag: tag, backend: defaultBackend}
	l.SetLevel(LevelInfo)
	registry[tag] = l
	return l
}
