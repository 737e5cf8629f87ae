package record

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Canonical front matter keys and the aliases accepted for them.
const (
	keyTitle            = "title"
	keyDescription      = "description"
	keyPublishedAt      = "publishedAt"
	keyModifiedAt       = "modifiedAt"
	keyThumbnailPath    = "thumbnailPath"
	keySlug             = "slug"
	keyTags             = "tags"
	keyRecommended      = "recommended"
	keyType             = "type"
	keyCommentsThreadID = "commentsThreadId"
	keyBody             = "body"
)

var fieldAliases = map[string][]string{
	keyPublishedAt:   {"published"},
	keyModifiedAt:    {"modified"},
	keyThumbnailPath: {"thumbnail"},
}

var knownKeys = map[string]struct{}{
	keyTitle: {}, keyDescription: {}, keyPublishedAt: {}, "published": {},
	keyModifiedAt: {}, "modified": {}, keyThumbnailPath: {}, "thumbnail": {},
	keySlug: {}, keyTags: {}, keyRecommended: {}, keyType: {}, keyCommentsThreadID: {},
}

type frontMatterEnvelope struct {
	Title            string         `yaml:"title"`
	Description      string         `yaml:"description"`
	PublishedAt      timestampField `yaml:"publishedAt"`
	Published        timestampField `yaml:"published"`
	ModifiedAt       timestampField `yaml:"modifiedAt"`
	Modified         timestampField `yaml:"modified"`
	ThumbnailPath    string         `yaml:"thumbnailPath"`
	Thumbnail        string         `yaml:"thumbnail"`
	Slug             string         `yaml:"slug"`
	Tags             []string       `yaml:"tags"`
	Recommended      []string       `yaml:"recommended"`
	Type             string         `yaml:"type"`
	CommentsThreadID scalarText     `yaml:"commentsThreadId"`
}

func (env frontMatterEnvelope) published() timestampField {
	if env.PublishedAt.set {
		return env.PublishedAt
	}
	return env.Published
}

func (env frontMatterEnvelope) modified() timestampField {
	if env.ModifiedAt.set {
		return env.ModifiedAt
	}
	return env.Modified
}

func (env frontMatterEnvelope) thumbnail() string {
	if strings.TrimSpace(env.ThumbnailPath) != "" {
		return strings.TrimSpace(env.ThumbnailPath)
	}
	return strings.TrimSpace(env.Thumbnail)
}

// rawDocument is the split form of a document before typing.
type rawDocument struct {
	node   yaml.Node
	fields map[string]any
	body   string
}

// checkDelimiters requires the first line to be the opening delimiter and a
// later line to close the block.
func checkDelimiters(source string) error {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 || strings.TrimSuffix(lines[0], "\r") != delimiter {
		return newParseError(KindMalformedDocument, "", "", "document must start with a --- line")
	}
	for _, line := range lines[1:] {
		if strings.TrimSuffix(line, "\r") == delimiter {
			return nil
		}
	}
	return newParseError(KindMalformedDocument, "", "", "front matter block is not closed")
}

// splitDocument separates the metadata block from the body and decodes the
// block into a YAML node and a generic map.
func splitDocument(source string) (*rawDocument, error) {
	source = strings.TrimPrefix(source, "\ufeff")
	if err := checkDelimiters(source); err != nil {
		return nil, err
	}

	doc := &rawDocument{}
	format := frontmatter.NewFormat(delimiter, delimiter, func(data []byte, v any) error {
		return yaml.Unmarshal(data, v)
	})

	body, err := frontmatter.MustParse(strings.NewReader(source), &doc.node, format)
	if err != nil {
		return nil, newParseError(KindMalformedDocument, "", "", fmt.Sprintf("front matter: %v", err))
	}
	doc.body = string(body)

	fields, err := decodeFields(&doc.node)
	if err != nil {
		return nil, err
	}
	doc.fields = fields
	return doc, nil
}

func decodeFields(node *yaml.Node) (map[string]any, error) {
	if node.Kind == 0 {
		return map[string]any{}, nil
	}
	root := node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, newParseError(KindMalformedDocument, "", "", "front matter must be a key: value mapping")
	}

	fields := map[string]any{}
	if err := root.Decode(&fields); err != nil {
		return nil, newParseError(KindMalformedDocument, "", "", fmt.Sprintf("front matter: %v", err))
	}
	return fields, nil
}

// lookup returns the value stored under key or one of its aliases.
func lookup(fields map[string]any, key string) (any, bool) {
	if value, ok := fields[key]; ok && value != nil {
		return value, true
	}
	for _, alias := range fieldAliases[key] {
		if value, ok := fields[alias]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func extraFields(fields map[string]any) map[string]any {
	var extra map[string]any
	for key, value := range fields {
		if _, known := knownKeys[key]; known {
			continue
		}
		if extra == nil {
			extra = map[string]any{}
		}
		extra[key] = value
	}
	return extra
}
