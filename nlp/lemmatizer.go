package nlp

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

//go:embed lexicon/*
var lexiconFS embed.FS

// nounRules are the detachment rules applied to a plural noun form.
var nounRules = []struct {
	suffix      string
	replacement string
}{
	{"s", ""},
	{"ses", "s"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Dictionary maps an inflected English form to its base form.
// *golem.Lemmatizer implements it.
type Dictionary interface {
	InDict(word string) bool
	Lemma(word string) string
}

// Lemmatizer reduces a plural noun to its base form.
// A reduction is only accepted when the result is a lexicon entry or the
// dictionary base form of the token, so any output is either a known base
// form or the unchanged input.
type Lemmatizer struct {
	lexicon    map[string]struct{}
	exceptions map[string]string
	dictionary Dictionary
}

var defaultLemmatizer = sync.OnceValues(func() (*Lemmatizer, error) {
	dictionary, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return NewLemmatizer(lexiconFS, dictionary)
})

// NewLemmatizer reads lexicon/nouns.txt and lexicon/noun.exc from fsys.
// dictionary may be nil, the lexicon is then the only source of base forms.
func NewLemmatizer(fsys fs.FS, dictionary Dictionary) (*Lemmatizer, error) {
	l := &Lemmatizer{
		lexicon:    make(map[string]struct{}),
		exceptions: make(map[string]string),
		dictionary: dictionary,
	}
	err := readLines(fsys, "lexicon/nouns.txt", func(fields []string) {
		l.lexicon[fields[0]] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	err = readLines(fsys, "lexicon/noun.exc", func(fields []string) {
		if len(fields) < 2 {
			return
		}
		l.exceptions[fields[0]] = fields[1]
		l.lexicon[fields[1]] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lemmatizer) Lemmatize(token string) string {
	if l.isBaseOf(token, token) {
		return token
	}
	if base, ok := l.exceptions[token]; ok {
		return base
	}
	lemma := ""
	for _, rule := range nounRules {
		if !strings.HasSuffix(token, rule.suffix) {
			continue
		}
		candidate := strings.TrimSuffix(token, rule.suffix) + rule.replacement
		if candidate == "" {
			continue
		}
		if !l.isBaseOf(candidate, token) {
			continue
		}
		if lemma == "" || len(candidate) < len(lemma) {
			lemma = candidate
		}
	}
	if lemma == "" {
		return token
	}
	return lemma
}

// isBaseOf reports whether base is an accepted base form of token.
func (l *Lemmatizer) isBaseOf(base, token string) bool {
	if _, ok := l.lexicon[base]; ok {
		return true
	}
	return l.dictionary != nil && l.dictionary.InDict(token) && l.dictionary.Lemma(token) == base
}

func readLines(fsys fs.FS, name string, fn func(fields []string)) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(strings.Fields(strings.ToLower(line)))
	}
	return scanner.Err()
}
