package runtimeconfig

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-contentrecord/internal/logging/gologger"
)

var ErrParserTypesInvalid = errors.New("content config: parser types must be non-empty lowercase identifiers")
var ErrCorpusPatternInvalid = errors.New("content config: corpus pattern is not a valid glob")
var ErrCorpusConcurrencyInvalid = errors.New("content config: corpus concurrency must be zero or positive")
var ErrLoggingProviderRequired = errors.New("content config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("content config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("content config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("content config: logging format is invalid")

// Config is the runtime configuration for parsing and corpus loading.
type Config struct {
	Parser  ParserConfig
	Corpus  CorpusConfig
	Logging LoggingConfig
}

// ParserConfig controls record parsing policy.
type ParserConfig struct {
	// RejectModifiedBeforePublished makes modifiedAt < publishedAt fatal.
	RejectModifiedBeforePublished bool
	// Types lists accepted item types; empty means post and page.
	Types []string
}

// CorpusConfig controls document discovery.
type CorpusConfig struct {
	Pattern     string
	Recursive   bool
	Concurrency int
	CheckAssets bool
}

// LoggingConfig selects the logging backend.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns warn-only parsing, recursive discovery of *.md files
// and logging disabled.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{
			Types: []string{"post", "page"},
		},
		Corpus: CorpusConfig{
			Pattern:     "*.md",
			Recursive:   true,
			Concurrency: 4,
			CheckAssets: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

var typeIdentifier = validation.Match(regexp.MustCompile(`^[a-z][a-z0-9-]*$`))

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	for _, t := range cfg.Parser.Types {
		if err := validation.Validate(t, validation.Required, typeIdentifier); err != nil {
			return fmt.Errorf("%w: %q", ErrParserTypesInvalid, t)
		}
	}

	if pattern := strings.TrimSpace(cfg.Corpus.Pattern); pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: %s", ErrCorpusPatternInvalid, pattern)
		}
	}
	if err := validation.Validate(cfg.Corpus.Concurrency, validation.Min(0)); err != nil {
		return fmt.Errorf("%w: %d", ErrCorpusConcurrencyInvalid, cfg.Corpus.Concurrency)
	}

	if cfg.Logging.Enabled {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != "gologger" {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !gologger.SupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if !gologger.SupportedFormat(cfg.Logging.Format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
