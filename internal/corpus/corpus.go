package corpus

import (
	"github.com/goliatone/go-contentrecord/internal/record"
)

// Document is a successfully parsed file of the corpus.
type Document struct {
	Path     string
	Checksum []byte
	Item     *record.ContentItem
	Warnings []record.Warning
}

// Failure records a document that could not be admitted. Failures never
// abort the corpus load.
type Failure struct {
	Path string
	Err  error
}

// Corpus is the set of admitted documents, sorted by path, plus the
// failures collected while loading.
type Corpus struct {
	Documents []*Document
	Failures  []Failure
	bySlug    map[string]*Document
}

func newCorpus() *Corpus {
	return &Corpus{bySlug: map[string]*Document{}}
}

// Len returns the number of admitted documents.
func (c *Corpus) Len() int {
	return len(c.Documents)
}

// Lookup finds an admitted document by slug.
func (c *Corpus) Lookup(slug string) (*Document, bool) {
	doc, ok := c.bySlug[slug]
	return doc, ok
}

// Slugs returns the slugs of every admitted document.
func (c *Corpus) Slugs() record.SlugSet {
	set := make(record.SlugSet, len(c.bySlug))
	for slug := range c.bySlug {
		set[slug] = struct{}{}
	}
	return set
}

// Warnings flattens document warnings in path order.
func (c *Corpus) Warnings() []record.Warning {
	var out []record.Warning
	for _, doc := range c.Documents {
		out = append(out, doc.Warnings...)
	}
	return out
}

// admit adds doc unless its slug is taken, in which case a failure is
// recorded instead.
func (c *Corpus) admit(doc *Document) {
	if first, taken := c.bySlug[doc.Item.Slug]; taken {
		c.Failures = append(c.Failures, Failure{
			Path: doc.Path,
			Err:  newDuplicateSlugError(doc.Item.Slug, first.Path),
		})
		return
	}
	c.bySlug[doc.Item.Slug] = doc
	c.Documents = append(c.Documents, doc)
}
