package ingest

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	minCandidateLength = 3
	maxCandidateLength = 49
)

var stopWords = []string{"the", "and", "for", "with", "this", "that", "food", "best", "love", "amazing"}

var (
	handlePattern     = regexp.MustCompile(`@([A-Za-z0-9_.]+)`)
	atPhrasePattern   = regexp.MustCompile(`\b[Aa]t\s+([A-Z][^,.!?\n]*)`)
	pinPattern        = regexp.MustCompile(`📍\s*([^,.!?#@\n]+)`)
	straightQuotes    = regexp.MustCompile(`"([^"\n]+)"`)
	curlyQuotes       = regexp.MustCompile(`“([^”\n]+)”`)
	venueNounsPattern = regexp.MustCompile(
		`\b([A-Z][\w'&]*(?:\s+[A-Z][\w'&]*)*\s+(?i:restaurant|cafe|bistro|kitchen|eatery|bar|grill|house))\b`)
)

var candidatePatterns = []*regexp.Regexp{
	handlePattern,
	atPhrasePattern,
	pinPattern,
	straightQuotes,
	curlyQuotes,
	venueNounsPattern,
}

type candidate struct {
	position int
	text     string
}

// ExtractCandidates pulls likely restaurant names out of free text, in the
// order they first appear.
func ExtractCandidates(text string) []string {
	var found []candidate

	for _, pattern := range candidatePatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(text, -1) {
			value := strings.TrimSpace(text[match[2]:match[3]])
			value = strings.TrimRight(value, ".")

			found = append(found, candidate{position: match[2], text: value})
		}
	}

	slices.SortStableFunc(found, func(a, b candidate) int {
		return a.position - b.position
	})

	seen := make(map[string]bool, len(found))
	candidates := make([]string, 0, len(found))

	for _, c := range found {
		key := strings.ToLower(c.text)
		if seen[key] || !acceptable(c.text) {
			continue
		}

		seen[key] = true
		candidates = append(candidates, c.text)
	}

	return candidates
}

func acceptable(value string) bool {
	length := utf8.RuneCountInString(value)
	if length < minCandidateLength || length > maxCandidateLength {
		return false
	}

	return !slices.Contains(stopWords, strings.ToLower(value))
}
