package services

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// errEmptyVocabulary reports that no document contributed a single term,
// e.g. everything reduced to stop words. Callers substitute a documented
// fallback instead of surfacing it.
var errEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words")

var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// tfidfVectorizer builds a term-frequency/inverse-document-frequency space
// over a document set: unigrams and bigrams of lowercased word tokens with
// English stop words removed, vocabulary capped at maxFeatures terms by
// corpus frequency, smoothed idf, and l2-normalized rows.
//
// A vectorizer value is cheap and holds no fitted state between calls;
// construct one per computation.
type tfidfVectorizer struct {
	maxFeatures int
	ngramMax    int
	stopWords   map[string]struct{}
}

func newTFIDFVectorizer() *tfidfVectorizer {
	return &tfidfVectorizer{
		maxFeatures: 1000,
		ngramMax:    2,
		stopWords:   englishStopWords,
	}
}

// tokenize lowercases the document and emits word tokens of at least two
// characters, skipping stop words.
func (v *tfidfVectorizer) tokenize(doc string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := v.stopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// terms expands a token stream into n-grams up to ngramMax, joined with
// single spaces. Bigrams are formed after stop word removal.
func (v *tfidfVectorizer) terms(tokens []string) []string {
	terms := make([]string, 0, len(tokens)*v.ngramMax)
	terms = append(terms, tokens...)
	for n := 2; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// FitTransform fits the vocabulary over docs and returns one tf-idf row per
// document. Rows are l2-normalized so that cosine similarity reduces to a
// dot product.
func (v *tfidfVectorizer) FitTransform(docs []string) ([][]float64, error) {
	termLists := make([][]string, len(docs))
	corpusCount := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		terms := v.terms(v.tokenize(doc))
		termLists[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			corpusCount[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	if len(corpusCount) == 0 {
		return nil, errEmptyVocabulary
	}

	// Vocabulary keeps the maxFeatures most frequent terms; ties break
	// alphabetically for determinism.
	vocab := make([]string, 0, len(corpusCount))
	for t := range corpusCount {
		vocab = append(vocab, t)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if corpusCount[vocab[i]] != corpusCount[vocab[j]] {
			return corpusCount[vocab[i]] > corpusCount[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > v.maxFeatures {
		vocab = vocab[:v.maxFeatures]
	}

	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	// Smoothed idf: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, t := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, terms := range termLists {
		row := make([]float64, len(vocab))
		for _, t := range terms {
			if j, ok := index[t]; ok {
				row[j]++
			}
		}

		var sumSq float64
		for j := range row {
			row[j] *= idf[j]
			sumSq += row[j] * row[j]
		}
		if sumSq > 0 {
			norm := math.Sqrt(sumSq)
			for j := range row {
				row[j] /= norm
			}
		}
		rows[i] = row
	}

	return rows, nil
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// DocumentSimilarity computes TF-IDF cosine similarity between two texts.
// Degenerate input (both documents reduce to stop words) yields 0.0 rather
// than an error.
func DocumentSimilarity(a, b string) float64 {
	rows, err := newTFIDFVectorizer().FitTransform([]string{a, b})
	if err != nil {
		return 0
	}
	return cosineSimilarity(rows[0], rows[1])
}

// sentenceScores weights each sentence by the sum of its tf-idf terms.
// Rarer, more distinctive terms score higher; longer sentences accumulate
// more weight, which is an intentional length bias. A degenerate vocabulary
// falls back to uniform scores of 1.
func sentenceScores(sentences []string) []float64 {
	scores := make([]float64, len(sentences))

	rows, err := newTFIDFVectorizer().FitTransform(sentences)
	if err != nil {
		for i := range scores {
			scores[i] = 1
		}
		return scores
	}

	for i, row := range rows {
		var sum float64
		for _, v := range row {
			sum += v
		}
		scores[i] = sum
	}
	return scores
}
