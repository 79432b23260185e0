package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the capability behind the Log facade.
type Logger interface {
	Log(message string) error
}

// Channel names accepted by New.
const (
	ChannelStdout = "stdout"
	ChannelFile   = "file"
	ChannelJSON   = "json"
	ChannelZap    = "zap"
)

// Options configures New. Zero values fall back to sensible defaults.
type Options struct {
	Channel string    // stdout | file | json | zap (default: stdout)
	Path    string    // log file for the file channel (default: storage/logs/app.log)
	Level   string    // debug | info | warn | error, json and zap channels (default: info)
	Out     io.Writer // destination for stdout and json (default: os.Stdout)
}

// New builds the Logger for opts.Channel.
func New(opts Options) (Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	switch strings.ToLower(opts.Channel) {
	case "", ChannelStdout:
		return NewWriter(out), nil
	case ChannelFile:
		path := opts.Path
		if path == "" {
			path = filepath.Join("storage", "logs", "app.log")
		}
		return NewFile(path), nil
	case ChannelJSON:
		level, err := parseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
		return NewSlog(slog.New(handler), level), nil
	case ChannelZap:
		z, err := NewZap(opts.Level)
		if err != nil {
			return nil, err
		}
		return z, nil
	default:
		return nil, fmt.Errorf("logging: unknown channel %q", opts.Channel)
	}
}

// ── Writer ────────────────────────────────────────────────────────────────────

// WriterLogger writes each message on its own line.
type WriterLogger struct {
	w io.Writer
}

// NewWriter returns a Logger writing plain lines to w.
func NewWriter(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

func (l *WriterLogger) Log(message string) error {
	_, err := fmt.Fprintln(l.w, message)
	return err
}

// ── File ──────────────────────────────────────────────────────────────────────

// timestampLayout renders as 2006/01/02 15:04:05.
const timestampLayout = "2006/01/02 15:04:05"

// FileLogger appends "<timestamp>: <message>" lines to a file. The file is
// opened and closed on every call, so rotating it needs no coordination.
type FileLogger struct {
	path string
	now  func() time.Time
}

// NewFile returns a Logger appending to path. Parent directories are
// created on first write.
func NewFile(path string) *FileLogger {
	return &FileLogger{path: path, now: time.Now}
}

// Path returns the file being written.
func (l *FileLogger) Path() string { return l.path }

func (l *FileLogger) Log(message string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("logging: create log directory: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logging: open %s: %w", l.path, err)
	}
	line := l.now().Format(timestampLayout) + ": " + message + "\n"
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("logging: write %s: %w", l.path, err)
	}
	return f.Close()
}

// ── Levels ────────────────────────────────────────────────────────────────────

// LevelLogger is implemented by loggers that can emit at a chosen level.
// Log on such a logger uses its configured level.
type LevelLogger interface {
	Logger
	LogAt(level slog.Level, message string) error
}

// At logs message at level when l supports levels, and falls back to Log
// otherwise.
//
//	// Laravel: Log::error('Disk full')
//	logging.At(logger, slog.LevelError, "Disk full")
func At(l Logger, level slog.Level, message string) error {
	if ll, ok := l.(LevelLogger); ok {
		return ll.LogAt(level, message)
	}
	return l.Log(message)
}

// ── slog ──────────────────────────────────────────────────────────────────────

// SlogLogger forwards messages to a *slog.Logger at a fixed level.
type SlogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlog wraps logger; every message is emitted at level.
func NewSlog(logger *slog.Logger, level slog.Level) *SlogLogger {
	return &SlogLogger{logger: logger, level: level}
}

func (l *SlogLogger) Log(message string) error {
	return l.LogAt(l.level, message)
}

func (l *SlogLogger) LogAt(level slog.Level, message string) error {
	l.logger.Log(context.Background(), level, message)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return level, nil
}

// ── zap ───────────────────────────────────────────────────────────────────────

// ZapLogger forwards messages to a zap.Logger.
type ZapLogger struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewZap builds a production zap logger; Log emits at level, which is also
// the logger's minimum level.
func NewZap(level string) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
		}
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build zap logger: %w", err)
	}
	return &ZapLogger{logger: logger, level: cfg.Level.Level()}, nil
}

// WrapZap uses an existing zap.Logger; Log emits at level.
func WrapZap(logger *zap.Logger, level zapcore.Level) *ZapLogger {
	return &ZapLogger{logger: logger, level: level}
}

func (l *ZapLogger) Log(message string) error {
	l.logger.Log(l.level, message)
	return nil
}

func (l *ZapLogger) LogAt(level slog.Level, message string) error {
	l.logger.Log(zapLevel(level), message)
	return nil
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
