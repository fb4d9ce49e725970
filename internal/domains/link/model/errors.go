package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// LinkError reports the platform and URL whose write failed.
type LinkError struct {
	Op       Op
	Platform string
	URL      string
	Err      error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to %s %s link %q: %v", e.Op, e.Platform, e.URL, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}

func newLinkError[P Platform](op Op, c Change[P], err error) *LinkError {
	return &LinkError{
		Op:       op,
		Platform: c.Platform.StorageKey(),
		URL:      c.URL,
		Err:      err,
	}
}

// AsLinkError extracts a LinkError from an error chain.
func AsLinkError(err error) (*LinkError, bool) {
	var linkErr *LinkError
	ok := errors.As(err, &linkErr)
	return linkErr, ok
}

// FieldName returns the form field for a platform: "YouTubeMusic" → "you_tube_music".
func FieldName[P Platform](p P) string {
	var b strings.Builder
	for i, r := range p.StorageKey() {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
