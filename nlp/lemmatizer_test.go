package nlp

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLemmatizer_Lemmatize(t *testing.T) {
	req := require.New(t)
	lemmatizer, err := NewLemmatizer(fstest.MapFS{
		"lexicon/nouns.txt": {Data: []byte("# comment\nbus\nclass\nbox\nchurch\nfacility\nfee\nwoman\nnews\n")},
		"lexicon/noun.exc":  {Data: []byte("children child\n")},
	}, nil)
	req.NoError(err)

	tests := []struct {
		token    string
		expected string
	}{
		{"fees", "fee"},
		{"buses", "bus"},
		{"classes", "class"},
		{"boxes", "box"},
		{"churches", "church"},
		{"facilities", "facility"},
		{"women", "woman"},
		{"children", "child"},
		{"child", "child"},
		{"news", "news"},
		{"was", "was"},
		{"s", "s"},
		{"", ""},
	}
	for _, tt := range tests {
		req.Equal(tt.expected, lemmatizer.Lemmatize(tt.token), "token %q", tt.token)
	}
}

// mapDictionary knows the forms it holds, base forms map to themselves.
type mapDictionary map[string]string

func (d mapDictionary) InDict(word string) bool {
	_, ok := d[word]
	return ok
}

func (d mapDictionary) Lemma(word string) string {
	if base, ok := d[word]; ok {
		return base
	}
	return word
}

func TestLemmatizer_Lemmatize_With_Dictionary(t *testing.T) {
	req := require.New(t)
	lemmatizer, err := NewLemmatizer(fstest.MapFS{
		"lexicon/nouns.txt": {Data: []byte("fee\n")},
		"lexicon/noun.exc":  {Data: []byte("geese goose\n")},
	}, mapDictionary{
		"dogs":     "dog",
		"dog":      "dog",
		"churches": "church",
		"ponies":   "pony",
		"is":       "be",
		"does":     "do",
		"running":  "run",
		"news":     "news",
	})
	req.NoError(err)

	tests := []struct {
		token    string
		expected string
	}{
		{"dogs", "dog"},
		{"dog", "dog"},
		{"churches", "church"},
		{"ponies", "pony"},
		{"geese", "goose"},
		{"fees", "fee"},
		{"news", "news"},
		// Non-noun readings are never applied
		{"is", "is"},
		{"does", "does"},
		{"running", "running"},
		{"cats", "cats"},
	}
	for _, tt := range tests {
		req.Equal(tt.expected, lemmatizer.Lemmatize(tt.token), "token %q", tt.token)
	}
}

func TestLemmatizer_Lemmatize_Is_A_Fixed_Point(t *testing.T) {
	req := require.New(t)
	lemmatizer, err := defaultLemmatizer()
	req.NoError(err)

	for _, token := range []string{"fees", "addresses", "criteria", "scholarships", "hours", "this", "does",
		"dogs", "apples", "doctors", "geese", "axes", "glasses", "buses", "its", "us", "has"} {
		lemma := lemmatizer.Lemmatize(token)
		req.Equal(lemma, lemmatizer.Lemmatize(lemma), "token %q", token)
	}
}
