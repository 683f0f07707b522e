// Package analytics decides which requests count as page views, classifies
// their user agent and records them.
package analytics

import "regexp"

// Rule maps a predicate to a label.
type Rule struct {
	Label string
	Match func(s string) bool
}

// Matcher evaluates its rules top-down, the first matching rule wins.
type Matcher struct {
	rules    []Rule
	fallback string
}

// NewMatcher returns a matcher returning fallback when no rule matches.
func NewMatcher(fallback string, rules ...Rule) *Matcher {
	return &Matcher{rules: rules, fallback: fallback}
}

// Match returns the label of the first matching rule.
func (m *Matcher) Match(s string) string {
	for _, r := range m.rules {
		if r.Match(s) {
			return r.Label
		}
	}

	return m.fallback
}

// Pattern compiles a case-insensitive regular expression predicate.
func Pattern(expr string) func(string) bool {
	return regexp.MustCompile("(?i)" + expr).MatchString
}

// Not negates a predicate.
func Not(match func(string) bool) func(string) bool {
	return func(s string) bool { return !match(s) }
}

// All matches when every predicate matches.
func All(matches ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, m := range matches {
			if !m(s) {
				return false
			}
		}

		return true
	}
}
