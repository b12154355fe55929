// Package references models document pointers and resolves them against an in-memory document tree.
package references

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// Root marks the start of an internal pointer.
	Root = "#"
	// PathSeparator separates the segments of an internal pointer.
	PathSeparator = "/"
)

// Reference is a pointer string such as #/components/messages/UserSignedUp.
// Internal references start with # and point into the same document, anything else is external.
type Reference string

var _ fmt.Stringer = (*Reference)(nil)

// IsInternal reports whether the reference points into the same document.
func (r Reference) IsInternal() bool {
	return strings.HasPrefix(string(r), Root)
}

// IsExternal reports whether the reference points outside the current document.
func (r Reference) IsExternal() bool {
	return !r.IsInternal()
}

// GetURI returns the document part of the reference, empty for internal references.
func (r Reference) GetURI() string {
	uri, _, _ := strings.Cut(string(r), Root)
	return strings.TrimSpace(uri)
}

// Segments returns the non-empty /-delimited segments following the root marker.
// No unescaping is applied, segments are used exactly as written.
func (r Reference) Segments() []string {
	_, fragment, found := strings.Cut(string(r), Root)
	if !found {
		return nil
	}

	segments := []string{}
	for _, segment := range strings.Split(fragment, PathSeparator) {
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// Validate checks the reference is well formed without resolving it.
func (r Reference) Validate() error {
	if r == "" {
		return ErrMalformedPointer.Wrapf("empty reference")
	}

	if r.IsInternal() {
		if len(r.Segments()) == 0 {
			return ErrMalformedPointer.Wrapf("invalid reference path: %s", r)
		}
		return nil
	}

	if _, err := url.Parse(r.GetURI()); err != nil {
		return ErrMalformedPointer.Wrapf("invalid reference URI: %w", err)
	}
	return nil
}

func (r Reference) String() string {
	return string(r)
}

// Join builds an internal reference from path segments.
func Join(segments ...string) Reference {
	return Reference(Root + PathSeparator + strings.Join(segments, PathSeparator))
}
