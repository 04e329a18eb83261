package simjoin

// Posting is one entry of a PositionIndex posting list: the internal id of
// an L record and the 0-based position within that record's full ordered
// token list where the indexed token occurred (spec.md §4.4).
type Posting struct {
	DocID uint32
	Pos   int32
}

// PositionIndex inverts token id -> (record id, position) pairs over the
// prefix tokens of L, plus a size map of |ordered_tokens(r)| per record —
// spec.md's invariant "PositionIndex.size(r) = |ordered_tokens(r)|".
// Position lists intentionally stay plain sorted-by-insertion slices
// (not roaring bitmaps): the position filter needs the payload position
// alongside the id, which a bitmap cannot carry.
type PositionIndex struct {
	postings map[TokenID][]Posting
	size     map[uint32]int
}

// NewPositionIndex allocates an empty index.
func NewPositionIndex() *PositionIndex {
	return &PositionIndex{
		postings: make(map[TokenID][]Posting),
		size:     make(map[uint32]int),
	}
}

// Insert records internalID's full ordered token count and a posting for
// each of its first prefixLen tokens.
func (idx *PositionIndex) Insert(internalID uint32, ordered OrderedTokenList, prefixLen int) {
	idx.size[internalID] = len(ordered)
	for pos, tid := range ordered[:prefixLen] {
		idx.postings[tid] = append(idx.postings[tid], Posting{DocID: internalID, Pos: int32(pos)})
	}
}

// Probe returns the posting list for tid, nil if absent.
func (idx *PositionIndex) Probe(tid TokenID) []Posting {
	return idx.postings[tid]
}

// Size returns |ordered_tokens(r)| for the given internal record id.
func (idx *PositionIndex) Size(internalID uint32) int {
	return idx.size[internalID]
}
