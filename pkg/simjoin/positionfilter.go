package simjoin

// rejected implements the REDESIGN FLAGS §9 "hashmap with a small tagged value
// Enum{Rejected, Count(u32)}" representation of the candidate-overlap map:
// rejected is a sentinel distinct from every legal count, so a candidate
// that has been irrevocably pruned stays pruned for the rest of the sweep
// even if a later token position would, in isolation, look promising again.
const rejected int32 = -1

// PositionFilterCandidates is the position filter (spec.md §4.6, "the
// heart"): it sweeps the probe record's prefix tokens against the
// PositionIndex, maintaining a per-candidate running lower bound on
// overlap that is compared against an optimistic upper bound on the
// overlap still reachable from the current position onward. A candidate
// whose optimistic remaining overlap falls below threshold is pruned and
// never reconsidered, even though resetting its count to 0 "forgets" any
// overlap already accumulated (spec.md §9 Open Questions: intentional —
// verification would reject the candidate anyway).
//
// Returns a map of surviving candidate internal ids to their filter-time
// overlap count. That count is an intermediate artifact of pruning, not
// the candidate's true overlap — C8 computes the real similarity.
func PositionFilterCandidates(idx *PositionIndex, probe OrderedTokenList, prefixLen int, m SimMeasure, tau float64) map[uint32]int {
	nr := len(probe)
	if prefixLen > nr {
		prefixLen = nr
	}

	bounded := HasSizeBounds(m)
	var sizeLower, sizeUpper int
	var overlapCache map[int]int
	if bounded {
		sizeLower = SizeLower(nr, m, tau)
		sizeUpper = SizeUpper(nr, m, tau)
		overlapCache = make(map[int]int, sizeUpper-sizeLower+1)
		for size := sizeLower; size <= sizeUpper; size++ {
			overlapCache[size] = OverlapThreshold(size, nr, m, tau)
		}
	}
	thresholdFor := func(nc int) int {
		if bounded {
			return overlapCache[nc]
		}
		return OverlapThreshold(nc, nr, m, tau)
	}

	state := make(map[uint32]int32)

	for i := 0; i < prefixLen; i++ {
		for _, p := range idx.Probe(probe[i]) {
			cand := p.DocID
			nc := idx.Size(cand)
			if bounded && (nc < sizeLower || nc > sizeUpper) {
				continue
			}

			cur, seen := state[cand]
			if seen && cur == rejected {
				continue
			}

			overlapUpperBound := 1 + minInt(nr-i-1, nc-int(p.Pos)-1)
			if int(cur)+overlapUpperBound >= thresholdFor(nc) {
				state[cand] = cur + 1
			} else {
				state[cand] = rejected
			}
		}
	}

	result := make(map[uint32]int)
	for cand, v := range state {
		if v > 0 {
			result[cand] = int(v)
		}
	}
	return result
}

// FilterPair is the single-pair heuristic gate of spec.md §4.6: it builds
// a local, two-record token ordering rather than consulting the table-scope
// TokenOrdering, and returns true iff the pair should be dropped (no
// overlap survives the sweep). Per spec.md §9 Open Questions this yields
// different prefix choices than the table-scope filter by design, and
// tests must treat it as an independent heuristic, not a mirror of
// PositionFilterCandidates.
func FilterPair(lstring, rstring string, tok Tokenizer, m SimMeasure, tau float64, q int) bool {
	if lstring == "" || rstring == "" {
		return true
	}

	setMode := m != Overlap && m != EditDistance
	probeTok := WrapSetMode(tok, setMode)
	ltoks := probeTok.Tokenize(lstring)
	rtoks := probeTok.Tokenize(rstring)
	if len(ltoks) == 0 || len(rtoks) == 0 {
		return true
	}

	df := make(map[Token]int, len(ltoks)+len(rtoks))
	for _, t := range dedupeTokens(ltoks) {
		df[t]++
	}
	for _, t := range dedupeTokens(rtoks) {
		df[t]++
	}
	ordering := BuildOrdering(df)

	orderedL := OrderUsing(ltoks, ordering)
	orderedR := OrderUsing(rtoks, ordering)
	nl, nr := len(orderedL), len(orderedR)
	if nl == 0 || nr == 0 {
		return true
	}

	lPrefixLen := PrefixLength(nl, m, tau, q)
	rPrefixLen := PrefixLength(nr, m, tau, q)

	lPos := make(map[TokenID]int, lPrefixLen)
	for i, tid := range orderedL[:lPrefixLen] {
		if _, exists := lPos[tid]; !exists {
			lPos[tid] = i
		}
	}

	threshold := OverlapThreshold(nl, nr, m, tau)
	overlap := 0
	for i, tid := range orderedR[:rPrefixLen] {
		lp, ok := lPos[tid]
		if !ok {
			continue
		}
		overlapUpperBound := 1 + minInt(nl-lp-1, nr-i-1)
		if overlap+overlapUpperBound < threshold {
			return true
		}
		overlap++
	}

	return overlap == 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
