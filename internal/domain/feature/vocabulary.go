// Package feature builds the skill vocabulary and numeric scalers that
// turn raw freelancer and job records into comparable representations.
package feature

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Minimum token length kept by the tokenizer. Single-character
// fragments ("c" from "c++") carry no discriminating signal.
const minTokenLen = 2

// Vocabulary is the fitted TF-IDF term space over skill lists.
// Columns are assigned in sorted term order so repeated fits on the
// same corpus produce bit-identical vectors.
type Vocabulary struct {
	index map[string]int // term -> column
	terms []string       // column -> term
	idf   []float64      // column -> inverse document frequency
}

// tokenize lowercases and splits a skill list into word tokens. Runs
// of letters, digits and underscores of length >= 2 are kept; all
// punctuation separates tokens ("UI/UX" -> "ui", "ux").
func tokenize(skills []string) []string {
	joined := strings.ToLower(strings.Join(skills, " "))
	tokens := make([]string, 0, len(skills))
	var b strings.Builder
	flush := func() {
		if b.Len() >= minTokenLen {
			tokens = append(tokens, b.String())
		}
		b.Reset()
	}
	for _, r := range joined {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// fitVocabulary builds the term index and smoothed idf weights from
// one document per freelancer skill list.
func fitVocabulary(docs [][]string) *Vocabulary {
	docCount := float64(len(docs))
	termDocCounts := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, token := range tokenize(doc) {
			if !seen[token] {
				termDocCounts[token]++
				seen[token] = true
			}
		}
	}

	terms := make([]string, 0, len(termDocCounts))
	for term := range termDocCounts {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vocabulary{
		index: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}
	for i, term := range terms {
		v.index[term] = i
		// Smoothed idf: rare skills weigh more than ubiquitous ones.
		df := float64(termDocCounts[term])
		v.idf[i] = math.Log((1+docCount)/(1+df)) + 1
	}
	return v
}

// Vectorize maps a skill list into the fitted term space: raw term
// counts weighted by idf, then L2-normalized. Terms outside the
// vocabulary are ignored.
func (v *Vocabulary) Vectorize(skills []string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, token := range tokenize(skills) {
		if col, ok := v.index[token]; ok {
			vec[col] += v.idf[col]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Terms returns the vocabulary's skill terms in column order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Size returns the number of terms in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}
