package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// RawHandler writes the message followed by key=value pairs, without time or level.
type RawHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	// Dotted group path prepended to keys.
	prefix string
	// Pre-rendered attributes from WithAttrs.
	attrs string
}

// NewRawHandler creates a new RawHandler.
func NewRawHandler(w io.Writer, opts *slog.HandlerOptions) *RawHandler {
	h := &RawHandler{mu: &sync.Mutex{}, writer: w, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *RawHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one line per record.
func (h *RawHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, b.String())
	return err
}

// WithAttrs returns a handler that always writes the given attributes.
func (h *RawHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a handler that qualifies subsequent keys with name.
func (h *RawHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, groupAttr := range a.Value.Group() {
			appendAttr(b, prefix, groupAttr)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%v", prefix, a.Key, a.Value.Any())
}
