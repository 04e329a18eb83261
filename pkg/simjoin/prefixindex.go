package simjoin

import "github.com/kittclouds/simjoin/pkg/simjoin/postings"

// PrefixIndex inverts token id -> the internal ids of L records whose
// ordered-token prefix contains that token (spec.md §4.3). Built once per
// join and immutable afterward.
type PrefixIndex struct {
	postings map[TokenID]*postings.Entry
}

// NewPrefixIndex allocates an empty index.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{postings: make(map[TokenID]*postings.Entry)}
}

// Insert records that internalID's ordered token list has the given
// prefix length; every one of its first prefixLen tokens gets a posting
// for internalID.
func (idx *PrefixIndex) Insert(internalID uint32, ordered OrderedTokenList, prefixLen int) {
	for _, tid := range ordered[:prefixLen] {
		e, ok := idx.postings[tid]
		if !ok {
			e = postings.NewEntry(postings.DefaultBitmapThreshold)
			idx.postings[tid] = e
		}
		e.Add(internalID)
	}
}

// Probe returns the posting list for tid, or nil if tid never occurs in
// any indexed prefix.
func (idx *PrefixIndex) Probe(tid TokenID) postings.List {
	e, ok := idx.postings[tid]
	if !ok {
		return nil
	}
	return e.ToList()
}
