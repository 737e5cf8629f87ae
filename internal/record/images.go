package record

import (
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// newBodyParser builds a fresh parser per call so ImageReferences stays free
// of shared state.
func newBodyParser() goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(extension.GFM))
}

// ImageReferences lists the thumbnail followed by every image destination in
// the body, in document order without duplicates. The body is parsed, not
// rendered.
func ImageReferences(item *ContentItem) []string {
	if item == nil {
		return nil
	}

	seen := map[string]struct{}{}
	var refs []string
	add := func(dest string) {
		dest = strings.TrimSpace(dest)
		if dest == "" {
			return
		}
		if _, ok := seen[dest]; ok {
			return
		}
		seen[dest] = struct{}{}
		refs = append(refs, dest)
	}

	add(item.ThumbnailPath)

	source := []byte(item.Body)
	root := newBodyParser().Parser().Parse(text.NewReader(source))
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if image, ok := node.(*ast.Image); ok {
			add(string(image.Destination))
		}
		return ast.WalkContinue, nil
	})

	return refs
}

// IsLocalReference reports whether ref is a path relative to the document,
// as opposed to a URL or a site-rooted path.
func IsLocalReference(ref string) bool {
	_, ok := LocalAssetPath(ref)
	return ok
}

// LocalAssetPath returns the file path a document-relative reference points
// at: percent-escapes decoded, query and fragment dropped. ok is false for
// URLs, site-rooted paths and fragment-only references.
func LocalAssetPath(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "#") {
		return "", false
	}
	parsed, err := url.Parse(ref)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || parsed.Path == "" {
		return "", false
	}
	return parsed.Path, true
}
