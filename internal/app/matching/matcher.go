// Package matching scores skill sets against each other with a bag-of-words
// cosine similarity.
package matching

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize joins a skill set into one document and returns its lower-cased word tokens.
func Tokenize(skills []string) []string {
	return tokenPattern.FindAllString(strings.ToLower(strings.Join(skills, " ")), -1)
}

// Score returns the cosine similarity of the term-frequency vectors of a and b.
// It is 0 when either side has no tokens and is always within [0, 1].
func Score(a, b []string) float64 {
	ta, tb := Tokenize(a), Tokenize(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	vocab := vocabulary(ta, tb)
	va, vb := vectorize(ta, vocab), vectorize(tb, vocab)

	norm := math.Sqrt(floats.Dot(va, va) * floats.Dot(vb, vb))
	if norm == 0 {
		return 0
	}
	return clamp(floats.Dot(va, vb) / norm)
}

// Round2 rounds a score to two decimals for display.
func Round2(score float64) float64 {
	return math.Round(score*100) / 100
}

// Candidate is anything with an id and a skill set.
type Candidate struct {
	ID     string
	Skills []string
}

// Result pairs a candidate id with its score.
type Result struct {
	ID    string
	Score float64
}

// Rank scores every candidate against skills, highest first.
// Equal scores keep the input order.
func Rank(skills []string, candidates []Candidate) []Result {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{ID: c.ID, Score: Score(skills, c.Skills)}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func vocabulary(docs ...[]string) map[string]int {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, tok := range doc {
			seen[tok] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for tok := range seen {
		terms = append(terms, tok)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, tok := range terms {
		vocab[tok] = i
	}
	return vocab
}

func vectorize(tokens []string, vocab map[string]int) []float64 {
	v := make([]float64, len(vocab))
	for _, tok := range tokens {
		v[vocab[tok]]++
	}
	return v
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
