package simjoin

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingTokenizer memoizes Tokenize by input string in a bounded LRU,
// grounded on the direct golang-lru/v2 dependency of the retrieved
// cognicore-io-korel and zetxqx-llm-d-kv-cache-manager repos. Real join
// columns repeat values heavily (company-name suffixes, city names); this
// avoids re-tokenizing the same string on every occurrence.
//
// Tokenize returns the cached slice directly; callers must not mutate it.
type CachingTokenizer struct {
	inner Tokenizer
	cache *lru.Cache[string, []Token]
}

// NewCachingTokenizer wraps inner with an LRU of the given capacity.
func NewCachingTokenizer(inner Tokenizer, capacity int) (*CachingTokenizer, error) {
	c, err := lru.New[string, []Token](capacity)
	if err != nil {
		return nil, err
	}
	return &CachingTokenizer{inner: inner, cache: c}, nil
}

func (t *CachingTokenizer) Tokenize(s string) []Token {
	if toks, ok := t.cache.Get(s); ok {
		return toks
	}
	toks := t.inner.Tokenize(s)
	t.cache.Add(s, toks)
	return toks
}

func (t *CachingTokenizer) ReturnSet() bool { return t.inner.ReturnSet() }

// Unwrap exposes the decorated tokenizer so callers (e.g. the driver's
// EDIT_DISTANCE tokenizer-type check) can see through the cache layer.
func (t *CachingTokenizer) Unwrap() Tokenizer { return t.inner }

// SetReturnSet forwards to the inner tokenizer and clears the cache, since
// a mode change invalidates every memoized result.
func (t *CachingTokenizer) SetReturnSet(v bool) {
	t.inner.SetReturnSet(v)
	t.cache.Purge()
}
