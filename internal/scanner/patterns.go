package scanner

import (
	"github.com/bmatcuk/doublestar/v4"

	"photoscan/internal/apperr"
)

// patternSet matches a path against any of a list of glob patterns.
// Patterns use `*` for any run of characters within one path segment, `**`
// across segments, `?` for a single character, and bracket classes. Matching
// is performed against slash-separated paths relative to the scan root.
type patternSet struct {
	patterns []string
}

// compilePatterns validates patterns up front so a malformed glob fails the
// call before any filesystem work, never at match time. A nil set is returned
// for an empty list; callers treat nil as "no filter".
func compilePatterns(patterns []string) (*patternSet, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, apperr.Validationf("invalid glob pattern %q", p)
		}
	}
	return &patternSet{patterns: patterns}, nil
}

// matches reports whether relPath matches any pattern in the set.
func (ps *patternSet) matches(relPath string) bool {
	for _, p := range ps.patterns {
		// Patterns were validated at compile time; Match cannot fail here.
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
	}
	return false
}
