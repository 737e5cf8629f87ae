package logging

import (
	"context"

	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

const (
	rootModule   = "contentrecord"
	parserModule = "contentrecord.parser"
	corpusModule = "contentrecord.corpus"
)

// ModuleLogger returns a logger scoped to module. A nil provider, or one that
// returns nil, yields the no-op logger. The module name is attached as the
// "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ParserLogger returns the logger used by the record parser.
func ParserLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, parserModule)
}

// CorpusLogger returns the logger used by the corpus loader.
func CorpusLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, corpusModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
