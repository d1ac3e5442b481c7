package textrank

// TermVector maps vocabulary term ids to their frequency within one sentence.
type TermVector map[int]int

// Vectorize builds a term-frequency vector per sentence over a vocabulary
// local to this call. Term ids are assigned in first-seen order across the
// sentence sequence, so the result is deterministic for a given input.
// It returns the vectors and the vocabulary size.
func Vectorize(sentences []Sentence) ([]TermVector, int) {
	vocab := make(map[string]int)
	vectors := make([]TermVector, len(sentences))
	for i, s := range sentences {
		vec := make(TermVector, len(s.Tokens))
		for _, tok := range s.Tokens {
			id, ok := vocab[tok]
			if !ok {
				id = len(vocab)
				vocab[tok] = id
			}
			vec[id]++
		}
		vectors[i] = vec
	}
	return vectors, len(vocab)
}
