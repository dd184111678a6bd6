package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty input", "", ""},
		{"whitespace runs collapse", "a\n\nb\tc", "a b c"},
		{"period runs collapse", "x...y", "x.y"},
		{"periods survive as delimiters", "end. next", "end. next"},
		{"special characters blanked", "skills: go, sql", "skills  go  sql"},
		{"leading and trailing space trimmed", "  hello world  ", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t, []string{"one.", "two.", "three."}, SplitSentences("one. two. three."))
	assert.Equal(t, []string{"done!", "really?", "yes."}, SplitSentences("done! really? yes."))
	assert.Equal(t, []string{"no delimiter at all"}, SplitSentences("no delimiter at all"))
	assert.Equal(t, []string{"closed.", "open tail"}, SplitSentences("closed. open tail"))
	assert.Empty(t, SplitSentences(""))
	assert.Empty(t, SplitSentences(". . ."))
}

func TestSplitSentencesTrimsWhitespace(t *testing.T) {
	sentences := SplitSentences("first sentence.   second sentence.")
	assert.Equal(t, []string{"first sentence.", "second sentence."}, sentences)
}
