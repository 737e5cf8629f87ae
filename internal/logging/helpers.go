package logging

import (
	"maps"
	"strings"

	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

const (
	fieldContentPath = "content_path"
	fieldContentSlug = "slug"
)

// WithFields attaches fields when the logger supports FieldsLogger. Loggers
// without field support are returned unchanged.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithDocumentContext annotates the logger with the document path and slug.
// Blank values are skipped.
func WithDocumentContext(logger interfaces.Logger, path, slug string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldContentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(slug); trimmed != "" {
		fields[fieldContentSlug] = trimmed
	}
	return WithFields(logger, fields)
}
