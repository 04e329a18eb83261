package simjoin

// Token is the opaque, hashable unit the tokenizer contract produces.
// Typically a word or a q-gram; the core never inspects its structure.
type Token = string

// Tokenizer is the external contract spec.md §6 describes: split a string
// into a sequence of tokens, and report/toggle bag-vs-set semantics.
//
// The driver never calls SetReturnSet on a caller-supplied Tokenizer
// directly — per spec.md §9's "tokenizer flag mutation" redesign note, it
// wraps the tokenizer in a set-enforcing adapter instead, so a caller's own
// tokenizer instance is never mutated by a join it didn't ask to mutate it.
type Tokenizer interface {
	// Tokenize splits s into tokens honoring the tokenizer's current
	// bag/set mode.
	Tokenize(s string) []Token

	// ReturnSet reports whether Tokenize currently dedups its output.
	ReturnSet() bool

	// SetReturnSet toggles bag vs set semantics for direct callers. The
	// join driver itself never calls this; see WrapSetMode.
	SetReturnSet(bool)
}

// setModeAdapter forces a fixed bag/set mode on an inner Tokenizer without
// ever mutating the inner tokenizer's own flag.
type setModeAdapter struct {
	inner    Tokenizer
	forceSet bool
}

// WrapSetMode returns a Tokenizer that always tokenizes in the requested
// mode, regardless of inner's own configured mode, and leaves inner
// untouched. The join driver uses this to force set-mode for
// Jaccard/Dice/Cosine and bag-mode for Overlap/EditDistance (spec.md §6),
// without mutating caller-owned configuration (spec.md §9).
func WrapSetMode(inner Tokenizer, set bool) Tokenizer {
	return &setModeAdapter{inner: inner, forceSet: set}
}

func (a *setModeAdapter) Tokenize(s string) []Token {
	toks := a.inner.Tokenize(s)
	if !a.forceSet {
		return toks
	}
	return dedupeTokens(toks)
}

func (a *setModeAdapter) ReturnSet() bool   { return a.forceSet }
func (a *setModeAdapter) SetReturnSet(bool) {} // fixed for the adapter's lifetime, by design

// Unwrap exposes the wrapped tokenizer, e.g. for the driver's EDIT_DISTANCE
// tokenizer-type check to see through the adapter.
func (a *setModeAdapter) Unwrap() Tokenizer { return a.inner }

func isQgramTokenizer(tok Tokenizer) bool {
	for {
		if q, ok := tok.(interface{ IsQgram() bool }); ok && q.IsQgram() {
			return true
		}
		u, ok := tok.(interface{ Unwrap() Tokenizer })
		if !ok {
			return false
		}
		tok = u.Unwrap()
	}
}

func dedupeTokens(toks []Token) []Token {
	if len(toks) == 0 {
		return toks
	}
	seen := make(map[Token]struct{}, len(toks))
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
