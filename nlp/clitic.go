package nlp

import (
	"bytes"
	"strings"

	"github.com/blugelabs/bluge/analysis"
)

// irregularClitics are contractions whose head changes when split.
var irregularClitics = map[string][2]string{
	"can't":  {"can", "n't"},
	"won't":  {"will", "n't"},
	"shan't": {"shall", "n't"},
	"cannot": {"can", "not"},
}

// cliticSuffixes are detached from the head word. The leading apostrophe
// is dropped from the emitted token because word segmentation would drop
// it anyway when the token is analyzed again.
var cliticSuffixes = []string{"'s", "'re", "'ve", "'ll", "'m", "'d"}

// apostropheFilter folds typographic apostrophes to the ASCII one. Invalid
// UTF-8 sequences become a space: the word segmenter stops at the first one.
type apostropheFilter struct{}

func (apostropheFilter) Filter(input []byte) []byte {
	input = bytes.ToValidUTF8(input, []byte(" "))
	input = bytes.ReplaceAll(input, []byte("’"), []byte("'"))
	return bytes.ReplaceAll(input, []byte("‘"), []byte("'"))
}

// cliticFilter splits English contractions the way treebank tokenizers do:
// "don't" becomes "do" "n't", "what's" becomes "what" "s".
type cliticFilter struct{}

func (cliticFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	output := make(analysis.TokenStream, 0, len(input))
	for _, tok := range input {
		head, tail, ok := splitClitic(string(tok.Term))
		if !ok {
			output = append(output, tok)
			continue
		}
		output = append(output,
			&analysis.Token{
				Term:         []byte(head),
				Start:        tok.Start,
				End:          tok.Start + len(head),
				PositionIncr: tok.PositionIncr,
				Type:         tok.Type,
			},
			&analysis.Token{
				Term:         []byte(tail),
				Start:        tok.End - len(tail),
				End:          tok.End,
				PositionIncr: 1,
				Type:         tok.Type,
			})
	}
	return output
}

func splitClitic(term string) (string, string, bool) {
	if parts, ok := irregularClitics[term]; ok {
		return parts[0], parts[1], true
	}
	if len(term) > len("n't") && strings.HasSuffix(term, "n't") {
		return strings.TrimSuffix(term, "n't"), "n't", true
	}
	for _, suffix := range cliticSuffixes {
		if len(term) > len(suffix) && strings.HasSuffix(term, suffix) {
			return strings.TrimSuffix(term, suffix), suffix[1:], true
		}
	}
	return "", "", false
}
