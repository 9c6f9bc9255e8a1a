package logger

import (
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Builder assembles a zerolog.Logger from the log section of the config.
type Builder struct {
	cfg     config.LogConfig
	level   *zerolog.Level
	console io.Writer
}

// NewBuilder creates a builder writing console output to stderr
func NewBuilder(cfg config.LogConfig) *Builder {
	return &Builder{cfg: cfg, console: os.Stderr}
}

// WithLevel overrides the configured level
func (b *Builder) WithLevel(level zerolog.Level) *Builder {
	b.level = &level
	return b
}

// WithConsoleOutput redirects console output, mainly for tests
func (b *Builder) WithConsoleOutput(w io.Writer) *Builder {
	b.console = w
	return b
}

// Build creates the logger. When log_file is set, entries are also written to
// a lumberjack-rotated file; console format there is written without color.
func (b *Builder) Build() (zerolog.Logger, error) {
	level, err := b.resolveLevel()
	if err != nil {
		return zerolog.Logger{}, err
	}

	writers := []io.Writer{formatWriter(b.cfg.LogFormat, b.console, true)}

	if b.cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(b.cfg.LogFile), 0755); err != nil {
			return zerolog.Logger{}, common.WrapError(err, "failed to create log directory")
		}
		writers = append(writers, formatWriter(b.cfg.LogFormat, &lumberjack.Logger{
			Filename:   b.cfg.LogFile,
			MaxSize:    positiveOr(b.cfg.MaxLogSizeMB, config.DefaultMaxLogSizeMB),
			MaxBackups: positiveOr(b.cfg.MaxLogBackups, config.DefaultMaxLogBackups),
			LocalTime:  true,
		}, false))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	// net/http and rod report through the standard logger.
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

func (b *Builder) resolveLevel() (zerolog.Level, error) {
	if b.level != nil {
		return *b.level, nil
	}
	if strings.TrimSpace(b.cfg.LogLevel) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(b.cfg.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, common.NewValidationError("log_level", b.cfg.LogLevel, "unknown log level")
	}
	return level, nil
}

// formatWriter wraps out for the configured format: "json" is raw, "text" is
// uncolored console output, anything else is console output.
func formatWriter(format string, out io.Writer, color bool) io.Writer {
	switch strings.ToLower(format) {
	case "json":
		return out
	case "text":
		color = false
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !color}
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

// New builds a logger from application log configuration
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewBuilder(cfg).Build()
}
