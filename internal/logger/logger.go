package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger. Level is a zerolog level name and defaults to
// info. Writer defaults to stderr so artifacts printed on stdout stay clean.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is the structured logger shared by the engine and the commands. A
// nil *Logger is valid and drops every entry.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing JSON lines, or console output when
// HumanReadable is set.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func (l *Logger) derive(build func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: build(l.base.With()).Logger()}
}

// WithFields attaches fields to every entry of the returned logger. Keys are
// written in sorted order so log lines are stable between builds.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return l.derive(func(ctx zerolog.Context) zerolog.Context {
		for _, key := range keys {
			ctx = ctx.Interface(key, fields[key])
		}
		return ctx
	})
}

// ForPalette tags entries with the palette id.
func (l *Logger) ForPalette(id string) *Logger {
	return l.derive(func(ctx zerolog.Context) zerolog.Context {
		return ctx.Str("palette", id)
	})
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	return parsed >= l.base.GetLevel()
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.base.Info().Msg(msg)
	}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.base.Debug().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.base.Warn().Msg(msg)
	}
}

// Error logs msg with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
