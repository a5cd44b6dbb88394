package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mvnrepo/internal/ui/output"
	"go.trai.ch/mvnrepo/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
// Warnings and errors are prefixed with an icon; informational lines are
// dimmed so that resolution problems stand out.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to w (stderr when nil).
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as "<icon> <message> key=value ...".
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon + " ")
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		b.WriteString(" " + attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteString(" " + h.formatAttr(attr))
		return true
	})

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// levelStyle maps a level to its icon and color. Levels between the
// predefined ones take the style of the level below them.
func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}

// WithAttrs returns a new Handler with the given attributes appended. They
// keep the group they were added in.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, h.formatAttr(attr))
	}
	return &clone
}

// WithGroup returns a new Handler whose attribute keys are qualified with
// name. Nested groups are joined with dots.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// formatAttr renders key=value. Values containing whitespace, such as
// property file paths, are quoted.
func (h *PrettyHandler) formatAttr(attr slog.Attr) string {
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n") {
		value = strconv.Quote(value)
	}
	return h.prefix + attr.Key + "=" + value
}
