package simjoin

import "testing"

func TestPositionIndexInsertRecordsPositions(t *testing.T) {
	idx := NewPositionIndex()
	idx.Insert(5, OrderedTokenList{10, 20, 30}, 2)

	postings := idx.Probe(10)
	if len(postings) != 1 || postings[0].DocID != 5 || postings[0].Pos != 0 {
		t.Fatalf("unexpected posting for token 10: %v", postings)
	}
	postings = idx.Probe(20)
	if len(postings) != 1 || postings[0].Pos != 1 {
		t.Fatalf("unexpected posting for token 20: %v", postings)
	}
	if idx.Probe(30) != nil {
		t.Fatal("token 30 is outside the prefix of length 2 and must not be indexed")
	}
}

func TestPositionIndexSizeTracksFullTokenCount(t *testing.T) {
	idx := NewPositionIndex()
	idx.Insert(1, OrderedTokenList{1, 2, 3, 4}, 1)
	if idx.Size(1) != 4 {
		t.Fatalf("expected size 4 regardless of prefix length, got %d", idx.Size(1))
	}
}
