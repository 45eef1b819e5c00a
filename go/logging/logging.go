package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// Level types
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	// Format types
	FormatJSON = "json"
	FormatText = "text"
	FormatRaw  = "raw"
)

// Opts holds logging configuration options.
type Opts struct {
	Fields   []string `long:"field" env:"FIELD" env-delim:"," description:"Inject fields at the topline level, using k:v"`
	Level    string   `long:"level" env:"LEVEL" description:"Log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format   string   `long:"format" env:"FORMAT" description:"Log format" choice:"json" choice:"text" choice:"raw" default:"text"`
	FilePath string   `long:"file" env:"FILE" description:"Log to file instead of stderr"`
}

// Init initializes the default slog logger based on the provided options.
func Init(opts *Opts) error {
	logger, err := NewLogger(opts)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// NewLogger returns a logger writing to stderr, or to opts.FilePath when set.
func NewLogger(opts *Opts) (*slog.Logger, error) {
	writer := io.Writer(os.Stderr)
	if opts.FilePath != "" {
		file, err := os.OpenFile(opts.FilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		writer = file
	}
	return newLogger(opts, writer)
}

func newLogger(opts *Opts, writer io.Writer) (*slog.Logger, error) {
	handler, err := getHandler(opts, writer)
	if err != nil {
		return nil, err
	}
	logger := slog.New(handler)
	for _, field := range opts.Fields {
		key, value, ok := strings.Cut(field, ":")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid field format: %s", field)
		}
		logger = logger.With(key, value)
	}
	return logger, nil
}

func getHandler(opts *Opts, writer io.Writer) (slog.Handler, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch opts.Format {
	case FormatJSON:
		return slog.NewJSONHandler(writer, handlerOpts), nil
	case FormatText, "":
		return slog.NewTextHandler(writer, handlerOpts), nil
	case FormatRaw:
		return NewRawHandler(writer, handlerOpts), nil
	default:
		return nil, fmt.Errorf("unrecognized format: %s", opts.Format)
	}
}

var levelToSlogLevel = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func parseLevel(level string) (slog.Level, error) {
	if level == "" {
		return slog.LevelInfo, nil
	}
	if l, ok := levelToSlogLevel[level]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("unrecognized level: %s", level)
}
