package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	sink *sink

	Name  string
	Level LogLevel

	TimeFormat string
	File       string
	NoColor    bool
	JSON       bool
	NoTerminal bool
	Rotation   *LoggerRotation
}

type LoggerRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type LoggerOption func(*Logger)

// sink is shared between a logger and all of its named children.
type sink struct {
	mu       sync.Mutex
	terminal io.Writer
	file     *lumberjack.Logger
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

// WithFile additionally writes every entry to the given file, rotated by lumberjack.
func WithFile(file string) LoggerOption {
	return func(l *Logger) {
		l.File = file
	}
}

// WithTerminal replaces stdout as terminal output.
func WithTerminal(w io.Writer) LoggerOption {
	return func(l *Logger) {
		l.sink.terminal = w
	}
}

func WithoutTerminal() LoggerOption {
	return func(l *Logger) {
		l.NoTerminal = true
	}
}

func WithoutColor() LoggerOption {
	return func(l *Logger) {
		l.NoColor = true
	}
}

func WithJSON() LoggerOption {
	return func(l *Logger) {
		l.JSON = true
	}
}

func WithRotation(rotation LoggerRotation) LoggerOption {
	return func(l *Logger) {
		l.Rotation = &rotation
	}
}

func NewLogger(name string, level LogLevel, opts ...LoggerOption) *Logger {
	l := &Logger{
		sink: &sink{
			terminal: os.Stdout,
		},

		Name:  name,
		Level: level,

		TimeFormat: "2006-01-02 15:04:05",
		Rotation: &LoggerRotation{
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
			Compress:   false,
		},
	}

	for _, opt := range opts {
		opt(l)
	}

	l.setupWriter()

	return l
}

func (l *Logger) setupWriter() {
	if l.NoTerminal {
		l.sink.terminal = nil
	}

	if l.File != "" {
		l.sink.file = &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.Rotation.MaxSize,
			MaxBackups: l.Rotation.MaxBackups,
			MaxAge:     l.Rotation.MaxAge,
			Compress:   l.Rotation.Compress,
		}
	}
}

func (l *Logger) format(level LogLevel, timestamp, msg string, colored bool) string {
	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   msg,
		}

		jsonBytes, _ := json.Marshal(entry)
		return string(jsonBytes) + "\n"
	}

	prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}

	if colored {
		prefix = Colorize(level, prefix)
	}

	return fmt.Sprintf("%s %s\n", prefix, msg)
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	l.sink.mu.Lock()
	if l.sink.terminal != nil {
		io.WriteString(l.sink.terminal, l.format(level, timestamp, formattedMsg, !l.NoColor))
	}
	// The file never receives escape sequences
	if l.sink.file != nil {
		io.WriteString(l.sink.file, l.format(level, timestamp, formattedMsg, false))
	}
	l.sink.mu.Unlock()

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}

func (l *Logger) Named(name string) *Logger {
	if l.Name != "" {
		name = fmt.Sprintf("%s/%s", l.Name, name)
	}

	return &Logger{
		sink: l.sink, // Share the same writers

		Name:  name,
		Level: l.Level,

		TimeFormat: l.TimeFormat,
		File:       l.File,
		NoColor:    l.NoColor,
		NoTerminal: l.NoTerminal,
		JSON:       l.JSON,
		Rotation:   l.Rotation,
	}
}

// Close releases the log file, if any. Children share the file and must not be used afterwards.
func (l *Logger) Close() error {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if l.sink.file == nil {
		return nil
	}

	return l.sink.file.Close()
}
