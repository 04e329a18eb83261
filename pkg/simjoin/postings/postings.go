// Package postings implements the dual-mode posting-list representation
// backing the prefix and position indexes (spec.md §4.3/§4.4): sorted
// []uint32 slices for low document frequency, promoted to roaring bitmaps
// above a threshold for SIMD-friendly unions. Adapted from the retrieved
// teacher package's qgram/posting_list.go, which already imports
// RoaringBitmap/roaring/v2 for exactly this purpose even though its
// go.mod had drifted out of sync with that import.
package postings

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// DefaultBitmapThreshold is the document frequency at which a token's
// posting list is promoted from a sorted slice to a roaring bitmap.
const DefaultBitmapThreshold = 2000

// DocIter yields record ids in sorted order.
type DocIter interface {
	Next() bool
	DocID() uint32
}

// List unifies slice and bitmap representations of a token's posting list
// for the prefix filter's union (spec.md §4.5).
type List interface {
	Len() int
	Iter() DocIter
	Or(other List) List
	ToSlice(dst []uint32) []uint32
}

// ---------------------------------------------------------------------
// SlicePostings
// ---------------------------------------------------------------------

// SlicePostings is a sorted, deduplicated slice of record ids.
type SlicePostings struct {
	docs []uint32
}

// NewSlicePostings sorts and dedups docs in place and wraps the result.
func NewSlicePostings(docs []uint32) *SlicePostings {
	sort.Slice(docs, func(i, j int) bool { return docs[i] < docs[j] })
	docs = dedupe(docs)
	return &SlicePostings{docs: docs}
}

func dedupe(sorted []uint32) []uint32 {
	if len(sorted) <= 1 {
		return sorted
	}
	write := 1
	for read := 1; read < len(sorted); read++ {
		if sorted[read] != sorted[read-1] {
			sorted[write] = sorted[read]
			write++
		}
	}
	return sorted[:write]
}

func (s *SlicePostings) Len() int { return len(s.docs) }

func (s *SlicePostings) Iter() DocIter { return &sliceIter{docs: s.docs, idx: -1} }

func (s *SlicePostings) Or(other List) List {
	switch o := other.(type) {
	case *SlicePostings:
		return unionSlices(s.docs, o.docs)
	case *BitmapPostings:
		return &BitmapPostings{bm: roaring.Or(s.toBitmap(), o.bm)}
	default:
		return unionSlices(s.docs, other.ToSlice(nil))
	}
}

func (s *SlicePostings) ToSlice(dst []uint32) []uint32 { return append(dst, s.docs...) }

func (s *SlicePostings) toBitmap() *roaring.Bitmap {
	bm := roaring.New()
	bm.AddMany(s.docs)
	return bm
}

func unionSlices(a, b []uint32) *SlicePostings {
	result := make([]uint32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		case a[i] > b[j]:
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return &SlicePostings{docs: result}
}

type sliceIter struct {
	docs []uint32
	idx  int
}

func (it *sliceIter) Next() bool {
	it.idx++
	return it.idx < len(it.docs)
}

func (it *sliceIter) DocID() uint32 { return it.docs[it.idx] }

// ---------------------------------------------------------------------
// BitmapPostings
// ---------------------------------------------------------------------

// BitmapPostings is a roaring bitmap of record ids, used once a token's
// document frequency reaches its Entry's threshold.
type BitmapPostings struct {
	bm *roaring.Bitmap
}

func NewBitmapPostingsFromSlice(docs []uint32) *BitmapPostings {
	bm := roaring.New()
	bm.AddMany(docs)
	return &BitmapPostings{bm: bm}
}

func (b *BitmapPostings) Len() int { return int(b.bm.GetCardinality()) }

func (b *BitmapPostings) Iter() DocIter {
	return &bitmapIter{iter: b.bm.Iterator()}
}

func (b *BitmapPostings) Or(other List) List {
	switch o := other.(type) {
	case *BitmapPostings:
		return &BitmapPostings{bm: roaring.Or(b.bm, o.bm)}
	case *SlicePostings:
		return &BitmapPostings{bm: roaring.Or(b.bm, o.toBitmap())}
	default:
		bm := roaring.New()
		bm.AddMany(other.ToSlice(nil))
		return &BitmapPostings{bm: roaring.Or(b.bm, bm)}
	}
}

func (b *BitmapPostings) ToSlice(dst []uint32) []uint32 { return append(dst, b.bm.ToArray()...) }

type bitmapIter struct {
	iter    roaring.IntIterable
	current uint32
}

func (it *bitmapIter) Next() bool {
	if !it.iter.HasNext() {
		return false
	}
	it.current = it.iter.Next()
	return true
}

func (it *bitmapIter) DocID() uint32 { return it.current }

// ---------------------------------------------------------------------
// Entry — thresholded dual-mode builder
// ---------------------------------------------------------------------

// Entry accumulates record ids for one token during index build, promoting
// itself from a sorted slice to a roaring bitmap once DF reaches threshold,
// mirroring the teacher's GramEntry.
type Entry struct {
	DF        uint32
	threshold uint32
	small     []uint32
	large     *roaring.Bitmap
}

// NewEntry creates an empty entry promoting at threshold.
func NewEntry(threshold uint32) *Entry {
	if threshold == 0 {
		threshold = DefaultBitmapThreshold
	}
	return &Entry{threshold: threshold}
}

// Add inserts docID, maintaining sorted order in slice mode.
func (e *Entry) Add(docID uint32) {
	if e.large != nil {
		e.large.Add(docID)
		e.DF = uint32(e.large.GetCardinality())
		return
	}

	idx := sort.Search(len(e.small), func(i int) bool { return e.small[i] >= docID })
	if idx < len(e.small) && e.small[idx] == docID {
		return
	}
	e.small = append(e.small, 0)
	copy(e.small[idx+1:], e.small[idx:])
	e.small[idx] = docID
	e.DF++

	if e.DF >= e.threshold {
		e.large = roaring.New()
		e.large.AddMany(e.small)
		e.small = nil
	}
}

// ToList converts the entry into a List for union/iteration.
func (e *Entry) ToList() List {
	if e.large != nil {
		return &BitmapPostings{bm: e.large}
	}
	return &SlicePostings{docs: e.small}
}
