package simjoin

import (
	"fmt"

	"github.com/daulet/tokenizers"
)

// HFTokenizer adapts a HuggingFace tokenizer (via the cgo bindings also
// used directly by the retrieved piqnyx-ragproxy and
// zetxqx-llm-d-kv-cache-manager repos) to the Tokenizer contract, for
// callers who want subword-token-based set similarity instead of q-grams
// or whitespace words.
type HFTokenizer struct {
	tk        *tokenizers.Tokenizer
	returnSet bool
}

// NewHFTokenizer loads a tokenizer.json configuration file.
func NewHFTokenizer(configPath string) (*HFTokenizer, error) {
	tk, err := tokenizers.FromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("simjoin.NewHFTokenizer: %w", err)
	}
	return &HFTokenizer{tk: tk}, nil
}

// Close releases the underlying native tokenizer.
func (t *HFTokenizer) Close() error { return t.tk.Close() }

func (t *HFTokenizer) Tokenize(s string) []Token {
	_, pieces := t.tk.Encode(s, false)
	toks := make([]Token, len(pieces))
	copy(toks, pieces)
	if t.returnSet {
		return dedupeTokens(toks)
	}
	return toks
}

func (t *HFTokenizer) ReturnSet() bool     { return t.returnSet }
func (t *HFTokenizer) SetReturnSet(v bool) { t.returnSet = v }
