package services

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Sentinel summaries. These are contract values returned to clients, not
// errors; summarization never fails outright.
const (
	summaryTooShort  = "Resume content too short to summarize."
	summaryNoContent = "Unable to extract meaningful content from resume."
	summaryFailed    = "Error generating resume summary."
)

// minSummarizableLength is the normalized-text length below which a resume
// is not worth summarizing.
const minSummarizableLength = 50

// Summarize produces an extractive summary of resume text within maxLength
// characters: sentences are scored by tf-idf weight, the best are selected
// greedily under the character budget, and the selection is re-ordered by
// original document position. It never panics; any internal failure yields
// the failure sentinel.
func Summarize(resumeText string, maxLength int) (summary string) {
	defer func() {
		if r := recover(); r != nil {
			summary = summaryFailed
		}
	}()
	return summarize(resumeText, maxLength)
}

func summarize(resumeText string, maxLength int) string {
	text := CleanText(resumeText)
	if len(text) < minSummarizableLength {
		return summaryTooShort
	}

	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return summaryNoContent
	}

	// One or two sentences: return them directly, truncated to budget.
	if len(sentences) <= 2 {
		summary := strings.Join(sentences, " ")
		if utf8.RuneCountInString(summary) > maxLength {
			return truncateRunes(summary, maxLength) + "..."
		}
		return summary
	}

	scores := sentenceScores(sentences)
	selected := selectTopSentences(sentences, scores, maxLength)

	summary := strings.Join(selected, " ")
	if utf8.RuneCountInString(summary) > maxLength {
		truncated := truncateRunes(summary, maxLength)
		if cut := strings.LastIndex(truncated, " "); cut > 0 {
			truncated = truncated[:cut]
		}
		summary = truncated + "..."
	}
	return summary
}

// truncateRunes cuts s to at most n runes without splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// selectTopSentences picks sentences by score descending while they fit the
// character budget, then restores original order so the summary reads in
// document sequence.
func selectTopSentences(sentences []string, scores []float64, maxLength int) []string {
	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	var picked []int
	currentLength := 0
	for _, idx := range ranked {
		// +1 accounts for the joining space.
		length := utf8.RuneCountInString(sentences[idx])
		if currentLength+length+1 <= maxLength {
			picked = append(picked, idx)
			currentLength += length + 1
		}

		// Early stop: enough material once two sentences are in and the
		// budget is over 80% used.
		if len(picked) >= 2 && float64(currentLength) > float64(maxLength)*0.8 {
			break
		}
	}

	sort.Ints(picked)

	selected := make([]string, 0, len(picked))
	for _, idx := range picked {
		selected = append(selected, sentences[idx])
	}
	return selected
}
