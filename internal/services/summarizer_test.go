package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTooShort(t *testing.T) {
	assert.Equal(t, summaryTooShort, Summarize("short text", 200))
	assert.Equal(t, summaryTooShort, Summarize("", 200))
	assert.Equal(t, summaryTooShort, Summarize("   \n\t  ", 200))
}

func TestSummarizeNoSentences(t *testing.T) {
	// Long enough to pass the length gate but nothing survives sentence
	// splitting.
	text := strings.Repeat(". ", 30)
	assert.Equal(t, summaryNoContent, Summarize(text, 200))
}

func TestSummarizeSingleSentenceReturnedDirectly(t *testing.T) {
	text := "This resume describes a seasoned engineer with broad background in systems"
	assert.Equal(t, text, Summarize(text, 200))
}

func TestSummarizeSingleSentenceTruncated(t *testing.T) {
	text := "This resume describes a seasoned engineer with broad background in systems"
	summary := Summarize(text, 20)
	assert.Equal(t, text[:20]+"...", summary)
}

func TestSummarizeSelectsAllUnderGenerousBudget(t *testing.T) {
	text := "Go engineer with ten years experience. " +
		"Built large distributed systems at scale. " +
		"Led platform teams across three companies. " +
		"Deep expertise in cloud infrastructure."

	summary := Summarize(text, 400)

	// With room to spare every sentence is kept, re-joined in document
	// order with each sentence's period intact.
	assert.Equal(t, text, summary)
}

func TestSummarizeKeepsSentencePunctuation(t *testing.T) {
	text := "Go engineer with ten years experience. " +
		"Built large distributed systems at scale. " +
		"Led platform teams across three companies. " +
		"Deep expertise in cloud infrastructure."

	summary := Summarize(text, 400)
	assert.Contains(t, summary, "experience.")
	assert.Contains(t, summary, "scale.")
	assert.Equal(t, 4, strings.Count(summary, "."))
}

func TestTruncateRunesKeepsValidBoundaries(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	for n := 0; n <= 5; n++ {
		assert.True(t, utf8.ValidString(truncateRunes("héllo", n)))
	}
}

func TestSummarizeRespectsBudget(t *testing.T) {
	text := "Go engineer with ten years experience. " +
		"Built large distributed systems at scale. " +
		"Led platform teams across three companies. " +
		"Deep expertise in cloud infrastructure. " +
		"Frequent speaker at industry conferences. " +
		"Maintains several popular open source projects."

	summary := Summarize(text, 100)
	assert.NotEmpty(t, summary)
	assert.LessOrEqual(t, len(summary), 100)
}

func TestSummarizePreservesDocumentOrder(t *testing.T) {
	text := "Alpha section opens the resume with career goals. " +
		"Bravo section details kubernetes platform engineering work. " +
		"Charlie section lists database migration achievements. " +
		"Delta section closes with education and certifications."

	summary := Summarize(text, 300)
	require.NotEmpty(t, summary)

	// Whatever subset was selected must appear in original order.
	positions := []int{}
	for _, marker := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
		if idx := strings.Index(summary, marker); idx >= 0 {
			positions = append(positions, idx)
		}
	}
	require.GreaterOrEqual(t, len(positions), 2)
	for i := 1; i < len(positions); i++ {
		assert.Greater(t, positions[i], positions[i-1])
	}
}

func TestSummarizeNeverPanics(t *testing.T) {
	inputs := []string{
		strings.Repeat("\x00\xff\xfe", 40),
		strings.Repeat("!@#$%^&*()", 10),
		strings.Repeat("the and of with is are ", 10),
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			Summarize(input, 200)
		})
	}
}
