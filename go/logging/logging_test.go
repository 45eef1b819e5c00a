package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatJSON, `"msg":"hello"`},
		{FormatText, "msg=hello"},
		{FormatRaw, "hello key=value\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&Opts{Level: LevelInfo, Format: tt.format}, &buf)
			require.NoError(t, err)
			logger.Info("hello", "key", "value")
			require.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNewLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&Opts{Format: FormatRaw, Fields: []string{"tool:appicon", "url:http://x"}}, &buf)
	require.NoError(t, err)
	logger.Info("hello")
	require.Equal(t, "hello tool=appicon url=http://x\n", buf.String())

	_, err = newLogger(&Opts{Format: FormatRaw, Fields: []string{"missing-separator"}}, &buf)
	require.ErrorContains(t, err, "invalid field format")
}

func TestNewLoggerRejectsUnknownOptions(t *testing.T) {
	var buf bytes.Buffer
	_, err := newLogger(&Opts{Format: "xml"}, &buf)
	require.ErrorContains(t, err, "unrecognized format")
	_, err = newLogger(&Opts{Level: "loud"}, &buf)
	require.ErrorContains(t, err, "unrecognized level")
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&Opts{Level: LevelWarn, Format: FormatRaw}, &buf)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept")
	require.Equal(t, "kept\n", buf.String())
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(&Opts{Level: LevelInfo, Format: FormatRaw, FilePath: path})
	require.NoError(t, err)
	logger.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "to file\n", string(data))
}

type point struct{ x, y int }

func (p point) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("x", p.x), slog.Int("y", p.y))
}

func TestRawHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRawHandler(&buf, nil)).With("a", 1).WithGroup("g")
	logger.Info("msg", "b", 2, "p", point{3, 4})
	require.Equal(t, "msg a=1 g.b=2 g.p.x=3 g.p.y=4\n", buf.String())
}
