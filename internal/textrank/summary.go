package textrank

import (
	"sort"
	"strings"
)

// Selection defaults: roughly a fifth of the document, never fewer than one
// sentence and never more than three.
const (
	DefaultRatio    = 0.2
	DefaultMinCount = 1
	DefaultMaxCount = 3
)

// fastPathMax is the sentence count at or below which ranking is skipped and
// the whole document is returned as its own summary.
const fastPathMax = 3

// Summarize runs the full pipeline over text: segment, vectorize, rank,
// select. It returns the empty string when the text yields no sentences.
// iterations <= 0 selects DefaultIterations.
func Summarize(text string, damping float64, iterations int) string {
	if damping <= 0 || damping >= 1 {
		damping = DefaultDamping
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	sentences := Segment(text)
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) <= fastPathMax {
		return joinSentences(sentences)
	}

	vectors, _ := Vectorize(sentences)
	ranked := Rank(vectors, damping, iterations)
	return SelectSummary(ranked, sentences, DefaultRatio, DefaultMinCount, DefaultMaxCount)
}

// SelectSummary takes the top-ranked sentences, re-orders them by original
// position, and joins them with single spaces. The subset size is
// clamp(floor(N*ratio), minCount, maxCount).
func SelectSummary(ranked []Ranked, sentences []Sentence, ratio float64, minCount, maxCount int) string {
	n := len(sentences)
	if n == 0 {
		return ""
	}
	if n <= fastPathMax {
		return joinSentences(sentences)
	}

	count := int(float64(n) * ratio)
	if count < minCount {
		count = minCount
	}
	if count > maxCount {
		count = maxCount
	}
	if count > len(ranked) {
		count = len(ranked)
	}

	top := make([]Ranked, count)
	copy(top, ranked[:count])
	sort.Slice(top, func(a, b int) bool { return top[a].Index < top[b].Index })

	parts := make([]string, 0, count)
	for _, r := range top {
		parts = append(parts, sentences[r.Index].Text)
	}
	return strings.Join(parts, " ")
}

func joinSentences(sentences []Sentence) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}
