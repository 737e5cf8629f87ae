package corpus

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const duplicateSlugCode = "CONTENT_DUPLICATE_SLUG"

// ErrDuplicateSlug reports a slug already claimed by another document.
var ErrDuplicateSlug = errors.New("content corpus: duplicate slug")

// DuplicateSlugError names the slug and the document that claimed it first.
type DuplicateSlugError struct {
	Slug      string
	FirstPath string
	cause     error
}

func newDuplicateSlugError(slug, firstPath string) *DuplicateSlugError {
	err := &DuplicateSlugError{Slug: slug, FirstPath: firstPath}
	err.cause = goerrors.Wrap(ErrDuplicateSlug, goerrors.CategoryValidation, err.message()).
		WithTextCode(duplicateSlugCode)
	return err
}

func (e *DuplicateSlugError) message() string {
	return fmt.Sprintf("slug %q already used by %s", e.Slug, e.FirstPath)
}

func (e *DuplicateSlugError) Error() string {
	return "content corpus: " + e.message()
}

func (e *DuplicateSlugError) Unwrap() error { return e.cause }

func (e *DuplicateSlugError) Is(target error) bool { return target == ErrDuplicateSlug }
