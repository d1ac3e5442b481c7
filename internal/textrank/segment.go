// Package textrank scores sentences of a document by graph centrality and
// assembles an extractive summary from the top-ranked ones. All state is
// local to one call; the package holds nothing between requests.
package textrank

import "strings"

// MaxSentences caps how many sentences a single document contributes to the
// ranking. Everything past the cap is dropped, first sentences win.
const MaxSentences = 60

// Sentence is one segment of the source text. Index is its 0-based position
// in the original document and is the sole ordering key used when the
// summary is reassembled.
type Sentence struct {
	Index  int
	Text   string
	Tokens []string
}

// Segment splits text into sentences on any whitespace that follows terminal
// punctuation (. ! ?). This is a boundary heuristic, not a grammar:
// abbreviations split too, which is acceptable for ranking purposes.
// Blank fragments are dropped and at most MaxSentences are returned.
func Segment(text string) []Sentence {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []Sentence
	start := 0
	flush := func(end int) {
		frag := strings.TrimSpace(text[start:end])
		start = end
		if frag == "" {
			return
		}
		sentences = append(sentences, Sentence{
			Index:  len(sentences),
			Text:   frag,
			Tokens: Tokenize(frag),
		})
	}

	for i := 1; i < len(text); i++ {
		if isTerminal(text[i-1]) && isSpace(text[i]) {
			flush(i)
			if len(sentences) == MaxSentences {
				return sentences
			}
		}
	}
	flush(len(text))
	return sentences
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// Tokenize lowercases s, replaces anything outside [a-z0-9] with a space,
// splits on whitespace, and drops tokens of length <= 2. Short function
// words ("a", "is", "of") carry no ranking signal.
func Tokenize(s string) []string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, s)

	fields := strings.Fields(mapped)
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
