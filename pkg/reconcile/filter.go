package reconcile

import "strings"

// filter removes official-catalog records whose names match any of a
// configured set of case-insensitive substring patterns. These cover skin
// categories with no standard shop price (prestige variants, ranked
// rewards, esports drops) that would otherwise join badly or not at all.
type filter struct {
	patterns []string
}

func newFilter(patterns []string) *filter {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			lowered = append(lowered, p)
		}
	}
	return &filter{patterns: lowered}
}

// excluded reports whether the skin name matches an exclusion pattern.
func (f *filter) excluded(name string) bool {
	if len(f.patterns) == 0 {
		return false
	}
	name = strings.ToLower(name)
	for _, p := range f.patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
