package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w\s.]`)
	periodRunRe  = regexp.MustCompile(`\.+`)
)

// CleanText normalizes raw document text for scoring. Whitespace runs
// collapse to a single space, characters that are neither word characters,
// whitespace, nor periods are blanked out, and period runs collapse to one.
// Periods survive because they delimit sentences downstream.
func CleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = nonWordRe.ReplaceAllString(text, " ")
	text = periodRunRe.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}

// SplitSentences segments text into sentences on terminal punctuation.
// Each sentence keeps its terminal mark; a trailing segment without one is
// returned as-is. Segments with no content besides the mark are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	add := func(seg string) {
		seg = strings.TrimSpace(seg)
		if strings.TrimSpace(strings.TrimRight(seg, ".!?")) == "" {
			return
		}
		sentences = append(sentences, seg)
	}

	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			add(text[start : i+1])
			start = i + 1
		}
	}
	add(text[start:])
	return sentences
}
