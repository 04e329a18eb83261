package simjoin

import (
	"reflect"
	"testing"
)

func TestQgramTokenizerBagMode(t *testing.T) {
	qt := NewQgramTokenizer(3)
	got := qt.Tokenize("aaaa")
	want := []Token{"aaa", "aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQgramTokenizerShortString(t *testing.T) {
	qt := NewQgramTokenizer(3)
	if got := qt.Tokenize("ab"); got != nil {
		t.Fatalf("expected nil for string shorter than q, got %v", got)
	}
}

func TestWordTokenizerBasic(t *testing.T) {
	wt := NewWordTokenizer()
	got := wt.Tokenize("red green blue")
	want := []Token{"red", "green", "blue"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWrapSetModeDedupsWithoutMutatingInner(t *testing.T) {
	qt := NewQgramTokenizer(3)
	qt.SetReturnSet(false)

	setTok := WrapSetMode(qt, true)
	got := setTok.Tokenize("aaaa")
	want := []Token{"aaa"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// inner tokenizer's own flag must be untouched by the adapter.
	if qt.ReturnSet() {
		t.Fatal("WrapSetMode must not mutate the wrapped tokenizer's own flag")
	}
	// the raw inner tokenizer is still bag-mode.
	if got := qt.Tokenize("aaaa"); len(got) != 2 {
		t.Fatalf("expected inner tokenizer to remain bag-mode, got %v", got)
	}
}

func TestWrapSetModeBagPassthrough(t *testing.T) {
	qt := NewQgramTokenizer(3)
	bagTok := WrapSetMode(qt, false)
	got := bagTok.Tokenize("aaaa")
	if len(got) != 2 {
		t.Fatalf("expected bag-mode passthrough of 2 grams, got %v", got)
	}
}

func TestCachingTokenizerMemoizes(t *testing.T) {
	calls := 0
	inner := &countingTokenizer{fn: func(s string) []Token {
		calls++
		return []Token{s}
	}}
	ct, err := NewCachingTokenizer(inner, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ct.Tokenize("hello")
	ct.Tokenize("hello")
	ct.Tokenize("world")

	if calls != 2 {
		t.Fatalf("expected inner Tokenize called twice (one per distinct string), got %d", calls)
	}
}

// countingTokenizer is a minimal Tokenizer stub for exercising decorators.
type countingTokenizer struct {
	fn  func(string) []Token
	set bool
}

func (c *countingTokenizer) Tokenize(s string) []Token { return c.fn(s) }
func (c *countingTokenizer) ReturnSet() bool           { return c.set }
func (c *countingTokenizer) SetReturnSet(v bool)       { c.set = v }
