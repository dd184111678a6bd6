package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSimilarityIdenticalDocuments(t *testing.T) {
	text := "senior golang engineer building distributed systems and cloud infrastructure"
	assert.InDelta(t, 1.0, DocumentSimilarity(text, text), 1e-9)
}

func TestDocumentSimilarityDisjointVocabulary(t *testing.T) {
	a := "golang kubernetes docker microservices"
	b := "pottery gardening cooking painting"
	assert.InDelta(t, 0.0, DocumentSimilarity(a, b), 1e-9)
}

func TestDocumentSimilarityPartialOverlap(t *testing.T) {
	a := "golang engineer kubernetes deployment pipelines"
	b := "golang developer kubernetes monitoring dashboards"
	sim := DocumentSimilarity(a, b)
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

func TestDocumentSimilarityStopWordsOnly(t *testing.T) {
	// Both documents reduce to an empty vocabulary; the fallback is 0.0,
	// not an error.
	a := "the and of with is are"
	b := "was were been being has"
	assert.Equal(t, 0.0, DocumentSimilarity(a, b))
}

func TestDocumentSimilarityOneEmptyDocument(t *testing.T) {
	assert.Equal(t, 0.0, DocumentSimilarity("golang engineer", ""))
}

func TestSentenceScoresUniformFallback(t *testing.T) {
	// Sentences made of stop words yield no vocabulary; scores fall back
	// to uniform 1s.
	scores := sentenceScores([]string{"the and of", "with is are", "was were been"})
	assert.Equal(t, []float64{1, 1, 1}, scores)
}

func TestSentenceScoresPositive(t *testing.T) {
	scores := sentenceScores([]string{
		"golang engineer with kubernetes experience",
		"led platform migrations across three regions",
		"mentored junior developers on testing practice",
	})
	require.Len(t, scores, 3)
	for _, s := range scores {
		assert.Greater(t, s, 0.0)
	}
}

func TestTFIDFVectorizerEmptyVocabulary(t *testing.T) {
	_, err := newTFIDFVectorizer().FitTransform([]string{"the", "and"})
	assert.ErrorIs(t, err, errEmptyVocabulary)
}

func TestTFIDFVectorizerRowsAreNormalized(t *testing.T) {
	rows, err := newTFIDFVectorizer().FitTransform([]string{
		"golang services and pipelines",
		"python notebooks and pipelines",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		var sumSq float64
		for _, v := range row {
			sumSq += v * v
		}
		assert.InDelta(t, 1.0, sumSq, 1e-9)
	}
}

func TestTFIDFVectorizerBigrams(t *testing.T) {
	v := newTFIDFVectorizer()
	terms := v.terms([]string{"machine", "learning", "engineer"})
	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "learning engineer")
	assert.Contains(t, terms, "machine")
}

func TestTFIDFVectorizerTokenizeSkipsStopWordsAndShortTokens(t *testing.T) {
	v := newTFIDFVectorizer()
	tokens := v.tokenize("The Go engineer and a CI pipeline")
	assert.Equal(t, []string{"engineer", "ci", "pipeline"}, tokens)
}
