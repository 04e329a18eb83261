package postings

import "testing"

func TestSlicePostingsSortsAndDedups(t *testing.T) {
	sp := NewSlicePostings([]uint32{5, 2, 2, 8, 1})
	if sp.Len() != 4 {
		t.Fatalf("expected 4 distinct docs, got %d", sp.Len())
	}
	var got []uint32
	it := sp.Iter()
	for it.Next() {
		got = append(got, it.DocID())
	}
	want := []uint32{1, 2, 5, 8}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestSlicePostingsOr(t *testing.T) {
	a := NewSlicePostings([]uint32{1, 3, 5})
	b := NewSlicePostings([]uint32{2, 3, 4})
	u := a.Or(b)
	if u.Len() != 5 {
		t.Fatalf("expected union of 5, got %d", u.Len())
	}
}

func TestEntryPromotesToBitmapAtThreshold(t *testing.T) {
	e := NewEntry(3)
	e.Add(10)
	e.Add(20)
	if _, isBitmap := e.ToList().(*BitmapPostings); isBitmap {
		t.Fatal("expected slice mode before threshold")
	}
	e.Add(30)
	if _, isBitmap := e.ToList().(*BitmapPostings); !isBitmap {
		t.Fatal("expected bitmap mode once threshold is crossed")
	}
	if e.ToList().Len() != 3 {
		t.Fatalf("expected 3 docs after promotion, got %d", e.ToList().Len())
	}
}

func TestEntryIgnoresDuplicateAdd(t *testing.T) {
	e := NewEntry(100)
	e.Add(7)
	e.Add(7)
	if e.ToList().Len() != 1 {
		t.Fatalf("expected duplicate add to be a no-op, got len %d", e.ToList().Len())
	}
}

func TestBitmapAndSliceOrInterop(t *testing.T) {
	big := NewEntry(2)
	big.Add(1)
	big.Add(2) // promotes at threshold=2
	small := NewSlicePostings([]uint32{2, 3})

	u := big.ToList().Or(small)
	if u.Len() != 3 {
		t.Fatalf("expected union of {1,2,3}, got %d", u.Len())
	}
}
