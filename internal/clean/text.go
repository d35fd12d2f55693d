// Package clean normalizes raw places-API records into canonical Business
// entities. Every per-field rule degrades malformed input to a documented
// default instead of returning an error, so a single bad record can never
// fail a whole batch.
package clean

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^\w\s\-.,]`)
	nonDigit      = regexp.MustCompile(`\D`)

	titleCaser = cases.Title(language.English)
)

// streetAbbreviations maps whole-word street-suffix abbreviations to their
// expanded forms. Applied case-insensitively before title-casing.
var streetAbbreviations = []struct {
	pattern *regexp.Regexp
	full    string
}{
	{regexp.MustCompile(`(?i)\bst\b`), "Street"},
	{regexp.MustCompile(`(?i)\bave\b`), "Avenue"},
	{regexp.MustCompile(`(?i)\bblvd\b`), "Boulevard"},
	{regexp.MustCompile(`(?i)\brd\b`), "Road"},
	{regexp.MustCompile(`(?i)\bdr\b`), "Drive"},
}

// Text strips characters outside {word, whitespace, hyphen, period, comma},
// collapses whitespace runs to a single space, and trims. Stable under
// re-application.
func Text(s string) string {
	s = disallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Address cleans an address string, expands recognized street-suffix
// abbreviations as whole words, and title-cases the result.
func Address(s string) string {
	if s == "" {
		return ""
	}
	cleaned := Text(s)
	for _, abbr := range streetAbbreviations {
		cleaned = abbr.pattern.ReplaceAllString(cleaned, abbr.full)
	}
	return titleCaser.String(cleaned)
}

// Phone reformats US phone numbers to (NNN) NNN-NNNN when the input holds
// exactly 10 digits, or 11 with a leading country digit 1. Anything else is
// returned as given.
func Phone(s string) string {
	if s == "" {
		return ""
	}
	digits := nonDigit.ReplaceAllString(s, "")
	switch {
	case len(digits) == 10:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) == 11 && digits[0] == '1':
		return "(" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	}
	return s
}

// URL prefixes https:// when the input carries no scheme.
func URL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return s
}
