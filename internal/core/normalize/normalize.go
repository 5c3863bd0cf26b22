// Package normalize produces canonical keys for the exact-match fields.
// All functions are total: any input maps to (key, true) or ("", false),
// never a panic. Missing and whitespace-only values normalize to none.
package normalize

import "strings"

// Email lower-cases and trims an email address. No validation beyond
// emptiness: a malformed address still normalizes, validity is the
// ingestion layer's concern.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return strings.ToLower(s), true
}

// LinkedInURL collapses a LinkedIn profile URL to a canonical form:
// scheme and www. prefix are normalized, query strings and trailing
// slashes dropped. Only personal-profile URLs (/in/<slug>) produce a key;
// company pages, job postings and anything else normalize to none so two
// different profiles can never collide through them.
func LinkedInURL(s string) (string, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "", false
	}

	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")

	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")

	if !strings.HasPrefix(s, "linkedin.com/in/") {
		return "", false
	}
	slug := s[len("linkedin.com/in/"):]
	if slug == "" || strings.Contains(slug, "/") {
		return "", false
	}

	return "https://linkedin.com/in/" + slug, true
}
