package zonewatch

import (
	"path/filepath"

	"github.com/gobwas/glob"
)

// Matcher decides whether a changed file in the watched directory describes the system zone
type Matcher interface {
	Match(path string) bool
}

// matcher implements the Matcher interface over base names
type matcher struct {
	patterns []glob.Glob
}

// NewMatcher compiles base-name glob patterns
func NewMatcher(patterns ...string) (Matcher, error) {
	m := &matcher{patterns: make([]glob.Glob, 0, len(patterns))}

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	return m, nil
}

// Match reports whether the base name of path matches any pattern
func (m *matcher) Match(path string) bool {
	name := filepath.Base(path)

	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}

	return false
}
