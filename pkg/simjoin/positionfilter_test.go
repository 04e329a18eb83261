package simjoin

import "testing"

// TestPositionFilterCandidatesSentinelIsPermanent exercises spec.md §4.6's
// load-bearing rule: once a candidate's optimistic remaining overlap falls
// below threshold it must stay rejected, even though a later token would,
// evaluated on its own, look promising again.
//
// Candidate 7's own token list puts t1 near its end (so the upper bound
// computed while sweeping t1 is tiny and fails the threshold), but t2 sits
// near the candidate's start (so the upper bound computed while sweeping
// t2 would, on its own, clear the threshold again). A filter that merely
// resets the overlap count to 0 on rejection — rather than marking the
// candidate permanently pruned — would incorrectly let candidate 7 survive.
func TestPositionFilterCandidatesSentinelIsPermanent(t *testing.T) {
	const (
		t0  TokenID = 0
		t1  TokenID = 1
		t2  TokenID = 2
		tA  TokenID = 100
		tB  TokenID = 101
		f0  TokenID = 200
		f1  TokenID = 201
		f2  TokenID = 202
		cid uint32  = 7
	)

	idx := NewPositionIndex()
	// candidate 7's full ordered token list (nc=5): t0@0, t2@1, tA@2, tB@3, t1@4.
	idx.Insert(cid, OrderedTokenList{t0, t2, tA, tB, t1}, 5)

	probe := OrderedTokenList{t0, t1, t2, f0, f1, f2} // nr=6
	candidates := PositionFilterCandidates(idx, probe, 3, Overlap, 3)

	if _, survived := candidates[cid]; survived {
		t.Fatalf("candidate %d must stay permanently pruned once rejected, got %v", cid, candidates)
	}
}

// TestPositionFilterCandidatesAcceptsGenuineOverlap is the straightforward
// counterpart: a candidate whose overlap upper bound never drops below
// threshold must survive with its tracked count.
func TestPositionFilterCandidatesAcceptsGenuineOverlap(t *testing.T) {
	const (
		t0  TokenID = 0
		t1  TokenID = 1
		t2  TokenID = 2
		cid uint32  = 1
	)

	idx := NewPositionIndex()
	idx.Insert(cid, OrderedTokenList{t0, t1, t2}, 3)

	probe := OrderedTokenList{t0, t1, t2}
	candidates := PositionFilterCandidates(idx, probe, 3, Overlap, 2)

	count, ok := candidates[cid]
	if !ok {
		t.Fatalf("expected candidate %d to survive, got %v", cid, candidates)
	}
	if count <= 0 {
		t.Fatalf("expected a positive overlap count, got %d", count)
	}
}

// TestPositionFilterCandidatesSkipsOutOfBoundsSize covers spec.md §8
// scenario 6: a candidate whose token count falls outside [size_lower,
// size_upper] for the probe's token count is never considered, regardless
// of how well its tokens would otherwise overlap.
func TestPositionFilterCandidatesSkipsOutOfBoundsSize(t *testing.T) {
	idx := NewPositionIndex()
	big := make(OrderedTokenList, 100)
	for i := range big {
		big[i] = TokenID(i)
	}
	idx.Insert(42, big, len(big))

	small := make(OrderedTokenList, 10)
	for i := range small {
		small[i] = TokenID(i) // shares every token id with the candidate's prefix
	}

	candidates := PositionFilterCandidates(idx, small, len(small), Jaccard, 0.5)
	if _, present := candidates[42]; present {
		t.Fatalf("expected size_upper pruning to exclude a 100-token candidate against a 10-token probe, got %v", candidates)
	}
}

func TestFilterPairDropsDisjointStrings(t *testing.T) {
	if !FilterPair("red green blue", "yellow purple orange", NewWordTokenizer(), Overlap, 2, 0) {
		t.Fatal("expected disjoint token sets to be dropped")
	}
}

func TestFilterPairKeepsOverlappingStrings(t *testing.T) {
	if FilterPair("red green blue", "blue red yellow", NewWordTokenizer(), Overlap, 2, 0) {
		t.Fatal("expected a pair with overlap >= threshold to survive the heuristic gate")
	}
}

func TestFilterPairDropsEmptyString(t *testing.T) {
	if !FilterPair("", "anything", NewWordTokenizer(), Jaccard, 0.5, 0) {
		t.Fatal("expected an empty string to be dropped")
	}
}
