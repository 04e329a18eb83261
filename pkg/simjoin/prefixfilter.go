package simjoin

import "github.com/kittclouds/simjoin/pkg/simjoin/postings"

// PrefixFilterCandidates returns the set of L internal-ids whose prefix
// shares at least one token with probePrefix — the union across
// PrefixIndex.Probe(t) for t in probePrefix (spec.md §4.5). Used directly
// by EditDistance (which has no position-based refinement, per
// original_source/py_stringsimjoin's edit_distance_join.py using
// PrefixFilter/PrefixIndex rather than PositionFilter/PositionIndex).
func PrefixFilterCandidates(idx *PrefixIndex, probePrefix OrderedTokenList) []uint32 {
	if len(probePrefix) == 0 {
		return nil
	}
	var union postings.List
	for _, tid := range probePrefix {
		list := idx.Probe(tid)
		if list == nil {
			continue
		}
		if union == nil {
			union = list
			continue
		}
		union = union.Or(list)
	}
	if union == nil {
		return nil
	}
	return union.ToSlice(nil)
}
