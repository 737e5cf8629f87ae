package corpus

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-contentrecord/internal/logging"
	"github.com/goliatone/go-contentrecord/internal/record"
	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

const defaultConcurrency = 4

// LoaderConfig configures document discovery.
type LoaderConfig struct {
	// Pattern limits discovered files to a glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// Concurrency bounds the number of documents parsed at once.
	Concurrency int
	// CheckAssets stats thumbnails and relative body images next to each
	// document and reports MissingAsset warnings.
	CheckAssets bool
}

// Loader reads content documents from a filesystem and assembles a Corpus.
type Loader struct {
	fs          fs.FS
	parser      *record.Parser
	logger      interfaces.Logger
	pattern     string
	recursive   bool
	concurrency int
	checkAssets bool
}

// NewLoader builds a Loader. A nil parser uses record defaults, a nil logger
// discards output.
func NewLoader(filesystem fs.FS, parser *record.Parser, logger interfaces.Logger, cfg LoaderConfig) *Loader {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if parser == nil {
		parser = record.NewParser()
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Loader{
		fs:          filesystem,
		parser:      parser,
		logger:      logger,
		pattern:     pattern,
		recursive:   cfg.Recursive,
		concurrency: concurrency,
		checkAssets: cfg.CheckAssets,
	}
}

// LoadFile reads and parses one document. Parse failures are returned as
// errors; use Load for corpus semantics.
func (l *Loader) LoadFile(ctx context.Context, name string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = cleanPath(name)
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("content loader read %s: %w", name, err)
	}

	item, warnings, err := l.parser.ParseWithWarnings(string(data))
	if err != nil {
		return nil, fmt.Errorf("content loader parse %s: %w", name, err)
	}

	sum := sha256.Sum256(data)
	return &Document{
		Path:     name,
		Checksum: sum[:],
		Item:     item,
		Warnings: warnings,
	}, nil
}

// Load discovers documents under dir, parses them concurrently and runs the
// corpus checks. Only walk errors and context cancellation are returned;
// per-document problems end up in Corpus.Failures.
func (l *Loader) Load(ctx context.Context, dir string) (*Corpus, error) {
	paths, err := l.discover(ctx, cleanPath(dir))
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, len(paths))
	errs := make([]error, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.concurrency)
	for i, name := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			doc, err := l.LoadFile(groupCtx, name)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				errs[i] = err
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	corpus := newCorpus()
	for i, name := range paths {
		if errs[i] != nil {
			logging.WithDocumentContext(l.logger, name, "").Warn("content.corpus.document_rejected", "error", errs[i])
			corpus.Failures = append(corpus.Failures, Failure{Path: name, Err: errs[i]})
			continue
		}
		before := len(corpus.Failures)
		corpus.admit(docs[i])
		if len(corpus.Failures) > before {
			logging.WithDocumentContext(l.logger, name, docs[i].Item.Slug).Warn("content.corpus.duplicate_slug", "error", corpus.Failures[before].Err)
		}
	}

	known := corpus.Slugs()
	for _, doc := range corpus.Documents {
		doc.Warnings = append(doc.Warnings, record.ValidateCrossReferences(doc.Item, known)...)
		if l.checkAssets {
			doc.Warnings = append(doc.Warnings, l.assetWarnings(doc)...)
		}
		if len(doc.Warnings) > 0 {
			logging.WithDocumentContext(l.logger, doc.Path, doc.Item.Slug).Debug("content.corpus.warnings", "count", len(doc.Warnings))
		}
	}

	l.logger.Info("content.corpus.loaded", "documents", corpus.Len(), "failures", len(corpus.Failures))
	return corpus, nil
}

func (l *Loader) discover(ctx context.Context, root string) ([]string, error) {
	var paths []string
	walkErr := fs.WalkDir(l.fs, root, func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if name != root && !l.recursive {
				return fs.SkipDir
			}
			return nil
		}
		if l.matchesPattern(name) {
			paths = append(paths, name)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("content loader walk %s: %w", root, walkErr)
	}
	sort.Strings(paths)
	return paths, nil
}

func (l *Loader) matchesPattern(name string) bool {
	pattern := l.pattern
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	target := path.Base(name)
	if strings.Contains(pattern, "/") {
		target = name
	}
	match, err := path.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

// assetWarnings checks referenced images relative to the document directory.
func (l *Loader) assetWarnings(doc *Document) []record.Warning {
	var warnings []record.Warning
	base := path.Dir(doc.Path)
	for _, ref := range record.ImageReferences(doc.Item) {
		local, ok := record.LocalAssetPath(ref)
		if !ok {
			continue
		}
		target := path.Join(base, local)
		if _, err := fs.Stat(l.fs, target); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrInvalid) {
			l.logger.Warn("content.corpus.asset_stat_failed", "asset", target, "error", err)
		}
		field := "body"
		if ref == doc.Item.ThumbnailPath {
			field = "thumbnailPath"
		}
		warnings = append(warnings, record.Warning{
			Code:    record.WarningMissingAsset,
			Slug:    doc.Item.Slug,
			Field:   field,
			Target:  ref,
			Message: fmt.Sprintf("asset %s not found next to %s", ref, doc.Path),
		})
	}
	return warnings
}

func cleanPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "."
	}
	return path.Clean(strings.ReplaceAll(name, "\\", "/"))
}
