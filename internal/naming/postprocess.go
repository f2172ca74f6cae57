package naming

import (
	"regexp"
	"strings"
)

var sepReplacer = strings.NewReplacer(".", " ", "_", " ")

// sepsToSpaces replaces dots and underscores with spaces. The result has the
// same byte length as s, so match offsets stay valid across both.
func sepsToSpaces(s string) string { return sepReplacer.Replace(s) }

var (
	reBrackets     = regexp.MustCompile(`\[[^\]]*\]`)
	reResToken     = regexp.MustCompile(`(?i)\b\d{3,4}p\b`)
	reParenNumber  = regexp.MustCompile(`\(\d+\)`)
	reMultiSpace   = regexp.MustCompile(`\s+`)
	reSpaceBefore  = regexp.MustCompile(`\s+([.)\]])`)
	reSpaceAfter   = regexp.MustCompile(`([(\[])\s+`)
	reTrailingYear = regexp.MustCompile(`\s+((?:19|20)\d{2})$`)
)

// stripBrackets removes all [bracketed] content.
func stripBrackets(s string) string {
	return strings.TrimSpace(reBrackets.ReplaceAllString(s, ""))
}

// cleanTitle turns a raw title slice into display form: separators become
// spaces, resolution tokens, bracket groups and parenthesized numbers are
// dropped, whitespace collapses and a trailing dash is removed.
func cleanTitle(s string) string {
	s = sepsToSpaces(s)
	s = reResToken.ReplaceAllString(s, "")
	s = reBrackets.ReplaceAllString(s, "")
	s = reParenNumber.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, " -")
	return strings.TrimSpace(s)
}

// dropTrailingYear removes year from the end of title so a series named
// "Show 2019" does not render as "Show 2019 (2019)".
func dropTrailingYear(title, year string) string {
	if year == "" {
		return title
	}
	m := reTrailingYear.FindStringSubmatchIndex(title)
	if m == nil || title[m[2]:m[3]] != year {
		return title
	}
	return strings.TrimSpace(title[:m[0]])
}

// cleanup is the final pass over a composed filename: collapse whitespace,
// drop spaces before "." ")" "]" and after "(" "[", and trim.
func cleanup(s string) string {
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reSpaceBefore.ReplaceAllString(s, "$1")
	s = reSpaceAfter.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
