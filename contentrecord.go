// Package contentrecord parses front matter content documents into typed
// records and loads whole content directories for a static-site build.
package contentrecord

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-contentrecord/internal/corpus"
	"github.com/goliatone/go-contentrecord/internal/logging"
	"github.com/goliatone/go-contentrecord/internal/logging/gologger"
	"github.com/goliatone/go-contentrecord/internal/record"
	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

type (
	ContentItem = record.ContentItem
	ItemType    = record.ItemType
	TagSet      = record.TagSet
	SlugSet     = record.SlugSet
	Warning     = record.Warning
	WarningCode = record.WarningCode
	ParseError  = record.ParseError
	ErrorKind   = record.ErrorKind

	Corpus             = corpus.Corpus
	Document           = corpus.Document
	Failure            = corpus.Failure
	DuplicateSlugError = corpus.DuplicateSlugError
)

const (
	TypePost = record.TypePost
	TypePage = record.TypePage

	KindMalformedDocument    = record.KindMalformedDocument
	KindMissingRequiredField = record.KindMissingRequiredField
	KindInvalidField         = record.KindInvalidField
	KindInvalidTimestamp     = record.KindInvalidTimestamp
	KindInvalidSlug          = record.KindInvalidSlug

	WarningDanglingRecommendation  = record.WarningDanglingRecommendation
	WarningModifiedBeforePublished = record.WarningModifiedBeforePublished
	WarningMissingAsset            = record.WarningMissingAsset
)

var (
	ErrMalformedDocument    = record.ErrMalformedDocument
	ErrMissingRequiredField = record.ErrMissingRequiredField
	ErrInvalidField         = record.ErrInvalidField
	ErrInvalidTimestamp     = record.ErrInvalidTimestamp
	ErrInvalidSlug          = record.ErrInvalidSlug
	ErrDuplicateSlug        = corpus.ErrDuplicateSlug
)

// NewTagSet re-exports record.NewTagSet.
func NewTagSet(values ...string) TagSet { return record.NewTagSet(values...) }

// NewSlugSet re-exports record.NewSlugSet.
func NewSlugSet(slugs ...string) SlugSet { return record.NewSlugSet(slugs...) }

// Option customises a Module.
type Option func(*Module)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.loggerProvider = provider
	}
}

// Module wires the parser, the corpus loader and logging from a Config.
type Module struct {
	cfg            Config
	loggerProvider interfaces.LoggerProvider
	parser         *record.Parser
	corpusLogger   interfaces.Logger
}

// New validates cfg and builds a Module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.loggerProvider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("contentrecord: logging: %w", err)
		}
		m.loggerProvider = provider
	}

	types := make([]record.ItemType, 0, len(cfg.Parser.Types))
	for _, t := range cfg.Parser.Types {
		types = append(types, record.ItemType(strings.TrimSpace(t)))
	}

	m.parser = record.NewParser(
		record.WithTypes(types...),
		record.WithRejectModifiedBeforePublished(cfg.Parser.RejectModifiedBeforePublished),
		record.WithLogger(logging.ParserLogger(m.loggerProvider)),
	)
	m.corpusLogger = logging.CorpusLogger(m.loggerProvider)
	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Parse parses a single document.
func (m *Module) Parse(raw string) (*ContentItem, error) {
	return m.parser.Parse(raw)
}

// ParseWithWarnings parses a single document and returns record-local
// warnings.
func (m *Module) ParseWithWarnings(raw string) (*ContentItem, []Warning, error) {
	return m.parser.ParseWithWarnings(raw)
}

// ValidateCrossReferences reports recommendations missing from knownSlugs.
func (m *Module) ValidateCrossReferences(item *ContentItem, knownSlugs SlugSet) []Warning {
	return record.ValidateCrossReferences(item, knownSlugs)
}

// ImageReferences lists the thumbnail and body images of item.
func (m *Module) ImageReferences(item *ContentItem) []string {
	return record.ImageReferences(item)
}

// LoadCorpus loads every document under dir in fsys.
func (m *Module) LoadCorpus(ctx context.Context, fsys fs.FS, dir string) (*Corpus, error) {
	loader := corpus.NewLoader(fsys, m.parser, m.corpusLogger, corpus.LoaderConfig{
		Pattern:     m.cfg.Corpus.Pattern,
		Recursive:   m.cfg.Corpus.Recursive,
		Concurrency: m.cfg.Corpus.Concurrency,
		CheckAssets: m.cfg.Corpus.CheckAssets,
	})
	return loader.Load(ctx, dir)
}

// LoadCorpusDir loads every document under basePath on disk.
func (m *Module) LoadCorpusDir(ctx context.Context, basePath string) (*Corpus, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("contentrecord: stat content dir %s: %w", basePath, err)
	}
	return m.LoadCorpus(ctx, os.DirFS(basePath), ".")
}

// Parse parses a single document with default settings.
func Parse(raw string) (*ContentItem, error) {
	return record.Parse(raw)
}

// ValidateCrossReferences reports recommendations missing from knownSlugs.
func ValidateCrossReferences(item *ContentItem, knownSlugs SlugSet) []Warning {
	return record.ValidateCrossReferences(item, knownSlugs)
}
