package gologger

import (
	"context"
	"reflect"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

func TestNewProviderCreatesLogger(t *testing.T) {
	p, err := NewProvider(Config{
		Level:  "debug",
		Format: "console",
	})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger("contentrecord.parser")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}

	child := logger.(interfaces.FieldsLogger).WithFields(map[string]any{"content_path": "posts/a.md"})
	if child == nil {
		t.Fatal("expected WithFields to return logger")
	}
	child.Debug("parser.ready")
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	if logger := p.GetLogger("contentrecord"); logger == nil {
		t.Fatal("expected no-op logger from nil provider")
	}
}

func TestSupportedLevelAndFormat(t *testing.T) {
	for _, level := range []string{"trace", "DEBUG", " info ", "warning", "error", "fatal"} {
		if !SupportedLevel(level) {
			t.Fatalf("expected level %q to be supported", level)
		}
	}
	if SupportedLevel("verbose") {
		t.Fatal("expected verbose to be rejected")
	}
	if !SupportedFormat("pretty") || SupportedFormat("yaml") {
		t.Fatal("format support mismatch")
	}
}

func TestNewProviderIgnoresUnknownLevel(t *testing.T) {
	p, err := NewProvider(Config{Level: "verbose", Format: " JSON "})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if logger := p.GetLogger(" "); logger == nil {
		t.Fatal("expected root logger for blank name")
	}
}

func TestSortedPairsOrdersByKey(t *testing.T) {
	got := sortedPairs(map[string]any{"slug": "a", "content_path": "posts/a.md"})
	want := []any{"content_path", "posts/a.md", "slug", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected pairs: %v", got)
	}
}

func TestAdapterDelegatesToUnderlyingLogger(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Trace("trace", "key", "value")
	adapted.Debug("debug")
	adapted.Info("info")
	adapted.Warn("warn")
	adapted.Error("error")
	adapted.Fatal("fatal")

	fields := map[string]any{"slug": "a"}
	if child := adapted.(interfaces.FieldsLogger).WithFields(fields); child == nil {
		t.Fatal("expected WithFields to return logger")
	}

	fields["slug"] = "b"
	if len(stub.fields) != 1 || stub.fields[0]["slug"] != "a" {
		t.Fatalf("expected fields to be cloned, got %v", stub.fields)
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}

	want := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if len(stub.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(stub.calls))
	}
	for i := range want {
		if stub.calls[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], stub.calls[i])
		}
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}
