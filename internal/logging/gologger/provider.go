package gologger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-contentrecord/internal/logging"
	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

// Config selects level, output format and source annotation for the
// go-logger backend. Focus limits output to the named module loggers
// (contentrecord.parser, contentrecord.corpus).
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// levels maps accepted level names onto go-logger levels.
var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

// formats maps accepted format names onto go-logger output options. An empty
// format means JSON.
var formats = map[string]func() glog.Option{
	"":        func() glog.Option { return glog.WithLoggerTypeJSON() },
	"json":    func() glog.Option { return glog.WithLoggerTypeJSON() },
	"console": func() glog.Option { return glog.WithLoggerTypeConsole() },
	"pretty":  func() glog.Option { return glog.WithLoggerTypePretty() },
}

// Provider adapts go-logger to interfaces.LoggerProvider.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds a go-logger root logger from cfg. Unknown formats are
// rejected, unknown levels fall back to the go-logger default.
func NewProvider(cfg Config) (*Provider, error) {
	format, ok := formats[normalizeName(cfg.Format)]
	if !ok {
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	options := []glog.Option{format()}
	if level, ok := levels[normalizeName(cfg.Level)]; ok {
		options = append(options, glog.WithLevel(level))
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)
	if focus := normalizeFocus(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{root: root}, nil
}

// SupportedLevel reports whether NewProvider understands level.
func SupportedLevel(level string) bool {
	_, ok := levels[normalizeName(level)]
	return ok
}

// SupportedFormat reports whether NewProvider understands format.
func SupportedFormat(format string) bool {
	_, ok := formats[normalizeName(format)]
	return ok
}

// GetLogger returns a child logger named after the module; the root logger
// when name is blank.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(name))
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

// WithFields prefers native field support and otherwise passes the fields as
// key/value pairs in key order.
func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		return wrap(with.WithFields(cloneFields(fields)))
	}
	if with, ok := l.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return wrap(with.With(sortedPairs(fields)...))
	}
	return l
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}

func cloneFields(fields map[string]any) map[string]any {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return copied
}

func sortedPairs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, fields[k])
	}
	return pairs
}

func normalizeName(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeFocus(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
