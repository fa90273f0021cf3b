package annotate

import "strings"

// Tokenizer turns raw transcription text into an ordered word sequence. It
// may return an empty slice, in which case the sentence is skipped.
type Tokenizer interface {
	Tokenize(raw string) []string
}

// WordTokenizer is the default tokenizer: whitespace split with clause and
// sentence punctuation peeled off into tokens of their own.
type WordTokenizer struct{}

const punct = ".,!?;:\"'()"

func (WordTokenizer) Tokenize(raw string) []string {
	var out []string
	for _, field := range strings.Fields(raw) {
		var lead []string
		for len(field) > 1 && strings.ContainsRune(punct, rune(field[0])) {
			lead = append(lead, field[:1])
			field = field[1:]
		}
		var trail []string
		for len(field) > 1 && strings.ContainsRune(punct, rune(field[len(field)-1])) {
			trail = append([]string{field[len(field)-1:]}, trail...)
			field = field[:len(field)-1]
		}
		out = append(out, lead...)
		out = append(out, field)
		out = append(out, trail...)
	}
	return out
}
