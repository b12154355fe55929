// Package pathmatch implements a small pattern language over dot-delimited document paths.
//
// Paths and patterns are split on unescaped dots; a backslash escapes the next character so map keys
// containing dots can appear as a single segment. Pattern segments are matched as follows:
//
//   - "*" matches exactly one path segment
//   - "**" matches zero or more path segments, anywhere in the pattern
//   - a segment containing "*" is a shell style glob matched against a single segment (for example "*_bindings")
//   - any other segment must equal the path segment
//
// When several patterns match the same path the one with the greatest Specificity wins.
package pathmatch

import (
	"path"
	"regexp"
	"strings"
)

const (
	// Separator delimits path segments.
	Separator = '.'
	// Escape escapes the character that follows it.
	Escape = '\\'

	anySegment   = "*"
	anySegments  = "**"
	rootInfix    = ".root."
	rootSuffix   = ".root"
	globWildcard = "*"
)

var indexSuffix = regexp.MustCompile(`\[\d+\]`)

// EscapeSegment escapes backslashes and dots in a single path segment.
func EscapeSegment(segment string) string {
	if !strings.ContainsAny(segment, `\.`) {
		return segment
	}
	segment = strings.ReplaceAll(segment, `\`, `\\`)
	return strings.ReplaceAll(segment, ".", `\.`)
}

// Join appends an escaped segment to a path.
func Join(base, segment string) string {
	return base + string(Separator) + EscapeSegment(segment)
}

// Split splits a path on unescaped dots, removing the escapes.
// A trailing lone backslash is kept as a literal backslash.
func Split(p string) []string {
	parts := []string{}
	var current strings.Builder
	escaped := false

	for _, ch := range p {
		switch {
		case escaped:
			current.WriteRune(ch)
			escaped = false
		case ch == Escape:
			escaped = true
		case ch == Separator:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if escaped {
		current.WriteRune(Escape)
	}

	return append(parts, current.String())
}

// Normalize strips keyed-mapping "root" markers and list indices from a path so it can be matched against patterns.
//
//	spec.channels.root.a.messages.root.m[2] -> spec.channels.a.messages.m
func Normalize(p string) string {
	p = strings.ReplaceAll(p, rootInfix, ".")
	p = strings.TrimSuffix(p, rootSuffix)
	return indexSuffix.ReplaceAllString(p, "")
}

// Matches reports whether the pattern matches the path.
func Matches(pattern, p string) bool {
	return newMatcher(Split(pattern), Split(p)).match(0, 0)
}

// MatchesSegments reports whether pre-split pattern segments match pre-split path segments.
func MatchesSegments(pattern, p []string) bool {
	return newMatcher(pattern, p).match(0, 0)
}

// SegmentMatches matches a single pattern segment against a single path segment.
func SegmentMatches(patternSegment, pathSegment string) bool {
	if patternSegment == anySegment {
		return true
	}
	if strings.Contains(patternSegment, globWildcard) {
		ok, err := path.Match(patternSegment, pathSegment)
		return err == nil && ok
	}
	return patternSegment == pathSegment
}

type matchKey struct {
	patternIndex int
	pathIndex    int
}

// matcher memoizes on (pattern index, path index) so repeated "**" segments stay polynomial.
type matcher struct {
	pattern []string
	path    []string
	memo    map[matchKey]bool
}

func newMatcher(pattern, p []string) *matcher {
	return &matcher{
		pattern: pattern,
		path:    p,
		memo:    make(map[matchKey]bool),
	}
}

func (m *matcher) match(patternIndex, pathIndex int) bool {
	key := matchKey{patternIndex: patternIndex, pathIndex: pathIndex}
	if result, ok := m.memo[key]; ok {
		return result
	}

	result := m.matchUncached(patternIndex, pathIndex)
	m.memo[key] = result
	return result
}

func (m *matcher) matchUncached(patternIndex, pathIndex int) bool {
	if patternIndex == len(m.pattern) {
		return pathIndex == len(m.path)
	}

	segment := m.pattern[patternIndex]
	if segment == anySegments {
		if patternIndex == len(m.pattern)-1 {
			return true
		}
		for next := pathIndex; next <= len(m.path); next++ {
			if m.match(patternIndex+1, next) {
				return true
			}
		}
		return false
	}

	if pathIndex >= len(m.path) {
		return false
	}

	if !SegmentMatches(segment, m.path[pathIndex]) {
		return false
	}

	return m.match(patternIndex+1, pathIndex+1)
}
