package simjoin

import (
	"strings"
	"unicode"

	"github.com/orsinium-labs/stopwords"
)

// WordTokenizer splits on Unicode whitespace, matching the word-splitting
// idiom the teacher's dafsa package uses for its own NormalizeRaw pipeline,
// with optional stopword filtering via the teacher's own (previously
// unimported) orsinium-labs/stopwords dependency.
type WordTokenizer struct {
	// Stopwords, when non-nil, removes matched words before they become
	// tokens. Pass stopwords.English (or any language set from the
	// package) to enable filtering; leave nil to keep every word.
	Stopwords stopwords.Set[string]

	returnSet bool
}

// NewWordTokenizer returns a bag-mode word tokenizer with no stopword
// filtering.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

func (t *WordTokenizer) Tokenize(s string) []Token {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	toks := make([]Token, 0, len(fields))
	for _, f := range fields {
		if t.Stopwords != nil && t.Stopwords.Has(strings.ToLower(f)) {
			continue
		}
		toks = append(toks, f)
	}
	if t.returnSet {
		return dedupeTokens(toks)
	}
	return toks
}

func (t *WordTokenizer) ReturnSet() bool     { return t.returnSet }
func (t *WordTokenizer) SetReturnSet(v bool) { t.returnSet = v }
