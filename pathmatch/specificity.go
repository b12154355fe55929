package pathmatch

import (
	"cmp"
	"strings"
)

// Specificity ranks how specific a pattern is. Greater is more specific.
type Specificity struct {
	Literals        int
	DoubleWildcards int
	Wildcards       int
	Segments        int
}

// SpecificityOf computes the ranking tuple of a pattern.
func SpecificityOf(pattern string) Specificity {
	return SpecificityOfSegments(Split(pattern))
}

// SpecificityOfSegments computes the ranking tuple of a pre-split pattern.
func SpecificityOfSegments(segments []string) Specificity {
	s := Specificity{Segments: len(segments)}

	for _, segment := range segments {
		switch {
		case segment == anySegments:
			s.DoubleWildcards++
			s.Wildcards++
		case strings.Contains(segment, globWildcard):
			s.Wildcards++
		default:
			s.Literals++
		}
	}

	return s
}

// Tuple returns (literals, -double wildcards, -wildcards, segments).
func (s Specificity) Tuple() [4]int {
	return [4]int{s.Literals, -s.DoubleWildcards, -s.Wildcards, s.Segments}
}

// Compare orders specificities lexicographically by Tuple.
func (s Specificity) Compare(other Specificity) int {
	a, b := s.Tuple(), other.Tuple()
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// MoreSpecificThan reports whether s ranks strictly above other.
func (s Specificity) MoreSpecificThan(other Specificity) bool {
	return s.Compare(other) > 0
}
