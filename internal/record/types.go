package record

import (
	"slices"
	"strings"
	"time"
)

// ItemType enumerates the kinds of content a document can declare.
type ItemType string

const (
	TypePost ItemType = "post"
	TypePage ItemType = "page"
)

// DefaultTypes lists the item types accepted when a parser is not configured
// otherwise.
func DefaultTypes() []ItemType {
	return []ItemType{TypePost, TypePage}
}

// ContentItem is the typed form of a content document.
type ContentItem struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	PublishedAt      time.Time      `json:"publishedAt"`
	ModifiedAt       *time.Time     `json:"modifiedAt,omitempty"`
	ThumbnailPath    string         `json:"thumbnailPath"`
	Slug             string         `json:"slug"`
	Tags             TagSet         `json:"tags"`
	Recommended      []string       `json:"recommended"`
	Type             ItemType       `json:"type"`
	CommentsThreadID string         `json:"commentsThreadId,omitempty"`
	Body             string         `json:"body"`
	Extra            map[string]any `json:"extra,omitempty"`
}

// LastChanged returns ModifiedAt when set, PublishedAt otherwise.
func (c *ContentItem) LastChanged() time.Time {
	if c.ModifiedAt != nil {
		return *c.ModifiedAt
	}
	return c.PublishedAt
}

// TagSet holds tags with set semantics. Values are trimmed, de-duplicated and
// kept sorted so two sets with the same members compare equal.
type TagSet []string

// NewTagSet normalises values into a TagSet. Blank values are dropped.
func NewTagSet(values ...string) TagSet {
	out := make(TagSet, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Contains reports whether tag is a member of the set.
func (t TagSet) Contains(tag string) bool {
	_, found := slices.BinarySearch(t, strings.TrimSpace(tag))
	return found
}

// Equal reports whether both sets hold the same members.
func (t TagSet) Equal(other TagSet) bool {
	return slices.Equal(NewTagSet(t...), NewTagSet(other...))
}

// SlugSet is a set of known slugs, used for cross reference checks.
type SlugSet map[string]struct{}

// NewSlugSet builds a SlugSet from slugs.
func NewSlugSet(slugs ...string) SlugSet {
	set := make(SlugSet, len(slugs))
	for _, slug := range slugs {
		set[slug] = struct{}{}
	}
	return set
}

// Has reports whether slug is in the set.
func (s SlugSet) Has(slug string) bool {
	_, ok := s[slug]
	return ok
}
