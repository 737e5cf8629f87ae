package record

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-contentrecord/internal/logging"
	"github.com/goliatone/go-contentrecord/pkg/interfaces"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// requiredOrder is the order in which missing fields are reported.
var requiredOrder = []string{
	keyTitle,
	keyDescription,
	keyPublishedAt,
	keySlug,
	keyType,
	keyThumbnailPath,
}

// Parser turns raw documents into content items. A Parser holds only
// configuration and is safe for concurrent use.
type Parser struct {
	types                         []ItemType
	rejectModifiedBeforePublished bool
	logger                        interfaces.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithTypes replaces the accepted item types.
func WithTypes(types ...ItemType) Option {
	return func(p *Parser) {
		if len(types) > 0 {
			p.types = append([]ItemType(nil), types...)
		}
	}
}

// WithRejectModifiedBeforePublished turns a modifiedAt earlier than
// publishedAt into an InvalidTimestamp error instead of a warning.
func WithRejectModifiedBeforePublished(reject bool) Option {
	return func(p *Parser) {
		p.rejectModifiedBeforePublished = reject
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser builds a parser with the default item types and warn-only
// handling of modifiedAt.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		types:  DefaultTypes(),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

var defaultParser = NewParser()

// Parse parses raw with the default parser.
func Parse(raw string) (*ContentItem, error) {
	return defaultParser.Parse(raw)
}

// Parse returns the typed item or a *ParseError.
func (p *Parser) Parse(raw string) (*ContentItem, error) {
	item, _, err := p.ParseWithWarnings(raw)
	return item, err
}

// ParseBytes is Parse for byte input.
func (p *Parser) ParseBytes(raw []byte) (*ContentItem, error) {
	return p.Parse(string(raw))
}

// ParseWithWarnings parses raw and also returns record-local warnings.
func (p *Parser) ParseWithWarnings(raw string) (*ContentItem, []Warning, error) {
	doc, err := splitDocument(raw)
	if err != nil {
		p.logger.Debug("content.parse.rejected", "error", err)
		return nil, nil, err
	}

	if err := requireFields(doc); err != nil {
		p.logger.Debug("content.parse.rejected", "error", err)
		return nil, nil, err
	}
	if err := checkShape(doc.fields); err != nil {
		p.logger.Debug("content.parse.rejected", "error", err)
		return nil, nil, err
	}

	var env frontMatterEnvelope
	if err := doc.node.Decode(&env); err != nil {
		return nil, nil, newParseError(KindInvalidField, "", "", fmt.Sprintf("front matter: %v", err))
	}

	item, warnings, err := p.build(env, doc)
	if err != nil {
		p.logger.Debug("content.parse.rejected", "error", err)
		return nil, nil, err
	}

	p.logger.Debug("content.parse.ok", "slug", item.Slug, "warnings", len(warnings))
	return item, warnings, nil
}

func requireFields(doc *rawDocument) error {
	for _, key := range requiredOrder {
		if !present(doc.fields, key) {
			return newParseError(KindMissingRequiredField, key, "", "")
		}
	}
	if strings.TrimSpace(doc.body) == "" {
		return newParseError(KindMissingRequiredField, keyBody, "", "")
	}
	return nil
}

// present reports whether key has a value. Only blank strings count as
// empty; values of the wrong type are left to checkShape.
func present(fields map[string]any, key string) bool {
	value, ok := lookup(fields, key)
	if !ok {
		return false
	}
	if s, isString := value.(string); isString {
		return validation.Validate(strings.TrimSpace(s), validation.Required) == nil
	}
	return true
}

func (p *Parser) build(env frontMatterEnvelope, doc *rawDocument) (*ContentItem, []Warning, error) {
	published, err := env.published().parse(keyPublishedAt)
	if err != nil {
		return nil, nil, err
	}

	item := &ContentItem{
		Title:            strings.TrimSpace(env.Title),
		Description:      strings.TrimSpace(env.Description),
		PublishedAt:      published,
		ThumbnailPath:    env.thumbnail(),
		Slug:             env.Slug,
		Tags:             NewTagSet(env.Tags...),
		Recommended:      trimAll(env.Recommended),
		Type:             ItemType(strings.TrimSpace(env.Type)),
		CommentsThreadID: string(env.CommentsThreadID),
		Body:             doc.body,
		Extra:            extraFields(doc.fields),
	}

	var warnings []Warning
	if modified := env.modified(); modified.set {
		ts, err := modified.parse(keyModifiedAt)
		if err != nil {
			return nil, nil, err
		}
		item.ModifiedAt = &ts
		if ts.Before(published) {
			if p.rejectModifiedBeforePublished {
				return nil, nil, newParseError(KindInvalidTimestamp, keyModifiedAt, modified.raw, "modifiedAt is earlier than publishedAt")
			}
			warnings = append(warnings, Warning{
				Code:    WarningModifiedBeforePublished,
				Slug:    item.Slug,
				Field:   keyModifiedAt,
				Message: fmt.Sprintf("modifiedAt %s is earlier than publishedAt %s", modified.raw, published.Format("2006-01-02T15:04:05Z07:00")),
			})
		}
	}

	if err := validation.Validate(item.Slug, validation.Match(slugPattern)); err != nil {
		return nil, nil, newParseError(KindInvalidSlug, keySlug, item.Slug, slugHint(item.Slug))
	}

	if err := validation.Validate(string(item.Type), validation.In(p.typeValues()...)); err != nil {
		return nil, nil, newParseError(KindInvalidField, keyType, string(item.Type), fmt.Sprintf("type must be one of %s", p.typeList()))
	}

	return item, warnings, nil
}

func slugHint(value string) string {
	hint := "only lowercase letters, digits and hyphens are allowed"
	if normalized, err := slug.Normalize(value); err == nil && normalized != "" && normalized != value && slugPattern.MatchString(normalized) {
		hint = fmt.Sprintf("%s (try %q)", hint, normalized)
	}
	return hint
}

func (p *Parser) typeValues() []any {
	values := make([]any, 0, len(p.types))
	for _, t := range p.types {
		values = append(values, string(t))
	}
	return values
}

func (p *Parser) typeList() string {
	names := make([]string, 0, len(p.types))
	for _, t := range p.types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
