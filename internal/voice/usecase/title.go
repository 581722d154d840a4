package usecase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stripRule is one step of the title cleanup pipeline.
type stripRule struct {
	name    string
	pattern *regexp.Regexp
}

// stripRules is applied in order: each rule operates on the output of the
// previous one, so ordering is part of the contract. Date phrases must go
// after "by <date>" clauses or the dangling "by" would survive.
var stripRules = []stripRule{
	{"command scaffolding", regexp.MustCompile(`(?i)^(create|add|make|new)\s+(a\s+)?(task\s+)?(to\s+)?`)},
	{"priority clause", regexp.MustCompile(`(?i),?\s*(urgent|high|low|medium)\s*priority`)},
	{"trailing priority mention", regexp.MustCompile(`(?i),?\s*(it'?s\s+)?(urgent|critical|important)\s*$`)},
	{"by-date clause", regexp.MustCompile(`(?i),?\s*by\s+(tomorrow|today|next\s+\w+|in\s+\d+\s+days?)`)},
	{"bare date phrase", regexp.MustCompile(`(?i),?\s*(tomorrow|today|next\s+\w+|in\s+\d+\s+days?)`)},
	{"time of day", regexp.MustCompile(`(?i),?\s*(in\s+the\s+)?(evening|morning|afternoon|night|noon|midnight)`)},
}

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// normalizeTitle strips command scaffolding and already-captured date, time
// and priority phrases from candidate, then capitalizes the result. It never
// returns an empty string for a non-empty original: when stripping consumes
// everything, the original text is used verbatim, capitalized.
func normalizeTitle(candidate, original string) string {
	cleaned := candidate
	for _, rule := range stripRules {
		cleaned = rule.pattern.ReplaceAllString(cleaned, "")
	}

	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(cleaned, " \t,.")

	if cleaned == "" {
		return capitalizeFirst(original)
	}
	return capitalizeFirst(cleaned)
}

// capitalizeFirst upper-cases the first rune of s.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
