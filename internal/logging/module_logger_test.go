package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

// plainLogger has no field support.
type plainLogger struct{}

func (plainLogger) Trace(string, ...any) {}
func (plainLogger) Debug(string, ...any) {}
func (plainLogger) Info(string, ...any)  {}
func (plainLogger) Warn(string, ...any)  {}
func (plainLogger) Error(string, ...any) {}
func (plainLogger) Fatal(string, ...any) {}

func (p plainLogger) WithContext(context.Context) interfaces.Logger {
	return p
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "contentrecord.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerNilFromProvider(t *testing.T) {
	provider := &stubProvider{}
	logger := ModuleLogger(provider, parserModule)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger when provider returns nil, got %T", logger)
	}
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = CorpusLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != corpusModule {
		t.Fatalf("expected module %s, got %v", corpusModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != corpusModule {
		t.Fatalf("expected module field %s, got %v", corpusModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestParserLoggerRequestsParserModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = ParserLogger(provider)
	if len(provider.requested) == 0 || provider.requested[0] != parserModule {
		t.Fatalf("expected parser module request, got %v", provider.requested)
	}
}

func TestWithDocumentContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}

	WithDocumentContext(rec, " posts/a.md ", "  ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0][fieldContentPath] != "posts/a.md" {
		t.Fatalf("expected trimmed path, got %v", rec.fields[0][fieldContentPath])
	}
	if _, ok := rec.fields[0][fieldContentSlug]; ok {
		t.Fatalf("expected blank slug to be skipped, got %v", rec.fields[0])
	}
}

func TestWithFieldsIgnoresLoggersWithoutFieldSupport(t *testing.T) {
	logger := WithFields(plainLogger{}, map[string]any{"a": 1})
	if _, ok := logger.(plainLogger); !ok {
		t.Fatalf("expected logger to be returned unchanged, got %T", logger)
	}

	rec := &recordingLogger{}
	WithFields(rec, nil)
	if len(rec.fields) != 0 {
		t.Fatalf("expected empty fields to skip WithFields, got %v", rec.fields)
	}
}
