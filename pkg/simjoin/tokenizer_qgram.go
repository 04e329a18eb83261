package simjoin

// QgramTokenizer splits a string into overlapping substrings of length Q,
// grounded on the teacher's own q-gram extraction in its retrieved
// qgram/indexer.go (ExtractGrams/IndexDocumentScoped). Bag semantics by
// default: a repeated gram is a repeated token, which is what the
// Overlap and EditDistance measures need (spec.md §6).
type QgramTokenizer struct {
	Q         int
	returnSet bool
}

// NewQgramTokenizer returns a bag-mode tokenizer producing q-grams of the
// given length.
func NewQgramTokenizer(q int) *QgramTokenizer {
	return &QgramTokenizer{Q: q}
}

func (t *QgramTokenizer) Tokenize(s string) []Token {
	if len(s) < t.Q {
		return nil
	}
	grams := make([]Token, 0, len(s)-t.Q+1)
	for i := 0; i <= len(s)-t.Q; i++ {
		grams = append(grams, s[i:i+t.Q])
	}
	if t.returnSet {
		return dedupeTokens(grams)
	}
	return grams
}

func (t *QgramTokenizer) ReturnSet() bool     { return t.returnSet }
func (t *QgramTokenizer) SetReturnSet(v bool) { t.returnSet = v }

// IsQgram marks this tokenizer as satisfying EDIT_DISTANCE's q-gram-only
// requirement (spec.md §4.2/§7); see isQgramTokenizer in tokenizer.go.
func (t *QgramTokenizer) IsQgram() bool { return true }
