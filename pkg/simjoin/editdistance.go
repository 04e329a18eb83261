package simjoin

// LevenshteinDistance computes the edit distance between a and b using the
// classic two-row dynamic program, keeping only O(min(len(a), len(b)))
// memory by always iterating the shorter string as the row dimension
// (spec.md §4.2's EditDistance verification step).
func LevenshteinDistance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) > len(br) {
		ar, br = br, ar
	}

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(br); j++ {
		curr[0] = j
		for i := 1; i <= len(ar); i++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[i] = minInt(minInt(curr[i-1]+1, prev[i]+1), prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ar)]
}

// VerifyEditDistancePair reports whether a and b clear an EditDistance
// join's comparison (spec.md §4.7): op must be LE, LT or EQ against tau,
// enforced earlier by CompOpAllowed.
func VerifyEditDistancePair(a, b string, op CompOp, tau float64) (distance int, ok bool) {
	distance = LevenshteinDistance(a, b)
	return distance, Compare(op, float64(distance), tau)
}
