package match

import (
	"math"
	"strings"
	"unicode"
)

// Corpus holds term statistics for a small, fixed set of documents. Scoring
// treats each (job, profile) pair as its own two-document corpus: every call
// builds a fresh Corpus value and nothing is shared between calls, so
// concurrent scoring cannot cross-contaminate weights.
type Corpus struct {
	docs []map[string]int
	df   map[string]int
}

// NewCorpus tokenizes the documents and computes term statistics over them.
func NewCorpus(documents ...string) Corpus {
	c := Corpus{
		docs: make([]map[string]int, 0, len(documents)),
		df:   make(map[string]int),
	}
	for _, doc := range documents {
		counts := make(map[string]int)
		for _, term := range Tokenize(doc) {
			counts[term]++
		}
		for term := range counts {
			c.df[term]++
		}
		c.docs = append(c.docs, counts)
	}
	return c
}

// Weight returns the TF-IDF weight of term within the document at index.
// Terms absent from the document weigh zero.
func (c Corpus) Weight(term string, index int) float64 {
	if index < 0 || index >= len(c.docs) {
		return 0
	}
	tf := c.docs[index][term]
	if tf == 0 {
		return 0
	}
	idf := 1 + math.Log(float64(len(c.docs))/float64(1+c.df[term]))
	return float64(tf) * idf
}

// Len reports the number of documents in the corpus.
func (c Corpus) Len() int {
	return len(c.docs)
}

// Tokenize lower-cases the text, replaces non-word runes with spaces, and
// splits on whitespace. Repeated tokens are kept.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}
	return strings.Fields(b.String())
}
