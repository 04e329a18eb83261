package simjoin

import "testing"

func TestPrefixIndexInsertAndProbe(t *testing.T) {
	idx := NewPrefixIndex()
	idx.Insert(1, OrderedTokenList{1, 2, 3}, 2)
	idx.Insert(2, OrderedTokenList{2, 3, 4}, 2)

	list := idx.Probe(2)
	if list == nil || list.Len() != 2 {
		t.Fatalf("expected token 2 to be posted for both records, got %v", list)
	}
	// token 4 only occurs at position 2 of record 2, outside its prefix of 2.
	if list := idx.Probe(4); list != nil {
		t.Fatalf("expected token 4 outside every indexed prefix, got %v", list)
	}
}

func TestPrefixIndexProbeUnknownTokenIsNil(t *testing.T) {
	idx := NewPrefixIndex()
	if idx.Probe(99) != nil {
		t.Fatal("expected nil for a token never inserted")
	}
}
