package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"
)

type customKey int

const (
	LogDataKey customKey = iota
)

// ContextHandler adds the request data stored in the context to every
// record before handing it to the wrapped handler.
type ContextHandler struct {
	handler slog.Handler
}

type LogData struct {
	RequestID string
	User      string
	Details   map[string]any
}

func New(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts != nil {
		return slog.New(NewContextHandler(slog.NewJSONHandler(w, opts)))
	}
	handler := slog.Handler(slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.TimeValue(a.Value.Time().Truncate(time.Millisecond))
			}
			return a
		},
		Level: slog.LevelInfo,
	}))
	return slog.New(NewContextHandler(handler))
}

// ParseLevel maps debug, info, warn and error; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

func (h *ContextHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.handler.Enabled(ctx, lvl)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ld, ok := ctx.Value(LogDataKey).(LogData); ok {
		if ld.RequestID != "" {
			rec.Add("request_id", ld.RequestID)
		}
		if ld.User != "" {
			rec.Add("user", ld.User)
		}
		if ld.Details != nil {
			rec.Add("details", ld.Details)
		}
	}
	return h.handler.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	ld, _ := ctx.Value(LogDataKey).(LogData)
	ld.RequestID = id
	return context.WithValue(ctx, LogDataKey, ld)
}

func WithUser(ctx context.Context, email string) context.Context {
	ld, _ := ctx.Value(LogDataKey).(LogData)
	ld.User = email
	return context.WithValue(ctx, LogDataKey, ld)
}

// WithDetails attaches extra data, mostly for error logs.
func WithDetails(ctx context.Context, key string, detail any) context.Context {
	ld, _ := ctx.Value(LogDataKey).(LogData)
	details := make(map[string]any, len(ld.Details)+1)
	for k, v := range ld.Details {
		details[k] = v
	}
	details[key] = detail
	ld.Details = details
	return context.WithValue(ctx, LogDataKey, ld)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	ld, _ := ctx.Value(LogDataKey).(LogData)
	return ld.RequestID
}
