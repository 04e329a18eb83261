package simjoin

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// TokenID is a dense integer rank assigned by an Ordering. Using ids
// instead of raw strings downstream (postings, position lists, overlap
// bookkeeping) is the "monomorphization" spirit of spec.md §9: comparisons
// become integer compares instead of string compares in the hot loops.
type TokenID = int32

// Ordering is the TokenOrdering of spec.md §3: a mapping from token to
// dense rank, built once by counting document frequency of each token
// across both tables combined and sorting by (frequency ascending, token
// ascending) — rarer tokens get lower ranks, making prefixes (the first
// few ranks in a record's sorted-by-rank token list) maximally selective.
type Ordering struct {
	rank map[Token]TokenID

	// Fingerprint is a content hash of the final (token, rank) assignment,
	// computed with xxhash (grounded on the direct xxhash/v2 dependency of
	// the retrieved piqnyx-ragproxy and zetxqx-llm-d-kv-cache-manager
	// repos). Two joins over identical token-frequency input always
	// produce identical fingerprints; it exists so the determinism
	// property from spec.md §8 can be checked cheaply without diffing
	// entire posting lists.
	Fingerprint uint64
}

// BuildOrdering builds a TokenOrdering from the combined document-frequency
// counts of L and R's join-attribute tokens (spec.md §4.1). Every token
// that appears in either table gets a rank, including tokens that occur on
// only one side.
func BuildOrdering(docFreq map[Token]int) *Ordering {
	type entry struct {
		tok  Token
		freq int
	}
	entries := make([]entry, 0, len(docFreq))
	for t, f := range docFreq {
		entries = append(entries, entry{tok: t, freq: f})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq < entries[j].freq
		}
		return entries[i].tok < entries[j].tok
	})

	rank := make(map[Token]TokenID, len(entries))
	h := xxhash.New()
	for i, e := range entries {
		rank[e.tok] = TokenID(i)
		_, _ = h.WriteString(e.tok)
		_, _ = h.Write([]byte{byte(e.freq), byte(e.freq >> 8), byte(e.freq >> 16), byte(e.freq >> 24)})
	}

	return &Ordering{rank: rank, Fingerprint: h.Sum64()}
}

// Rank returns t's dense rank and whether t is known to this ordering.
func (o *Ordering) Rank(t Token) (TokenID, bool) {
	r, ok := o.rank[t]
	return r, ok
}

// Len returns the number of distinct tokens this ordering ranks.
func (o *Ordering) Len() int { return len(o.rank) }

// OrderedTokenList is a sequence of token ids sorted ascending by rank —
// position i in the list is the 0-based "position" spec.md §4.4 indexes
// the position index by. Bag-mode tokenizers can yield duplicate ids;
// set-mode tokenizers cannot.
type OrderedTokenList []TokenID

// OrderUsing tokenizes nothing itself — it takes already-tokenized input,
// maps each token to its rank, drops tokens unknown to the ordering, and
// returns them sorted ascending by rank. The result depends only on which
// known tokens t contains (with multiplicity), not on their order, so
// ordering the tokens of an already-ordered list again yields the same ids
// (spec.md §8 property 5, idempotence of ordering).
func OrderUsing(tokens []Token, o *Ordering) OrderedTokenList {
	ids := make(OrderedTokenList, 0, len(tokens))
	for _, t := range tokens {
		if r, ok := o.rank[t]; ok {
			ids = append(ids, r)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DocumentFrequency counts, for each token produced by tok over every
// record's join attribute in tables, the number of distinct records the
// token appears in at least once (spec.md §4.1's "count document
// frequency ... across both sides combined").
func DocumentFrequency(tok Tokenizer, joinAttrs ...[]string) map[Token]int {
	setTok := WrapSetMode(tok, true)
	df := make(map[Token]int)
	for _, attrs := range joinAttrs {
		for _, s := range attrs {
			for _, t := range setTok.Tokenize(s) {
				df[t]++
			}
		}
	}
	return df
}
