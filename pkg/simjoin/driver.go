package simjoin

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/kittclouds/simjoin/pkg/simjoin/record"
	"github.com/kittclouds/simjoin/pkg/simjoin/simerr"
)

// Config is a Driver's programmatic configuration, mirroring
// spec.md §6's option table. pkg/simjoin/config.JoinConfig is the
// TOML-loadable counterpart; its Measure()/Op() methods resolve into the
// enums this struct holds directly.
type Config struct {
	Measure    SimMeasure
	CompOp     CompOp
	Threshold  float64
	AllowEmpty bool

	LOutAttrs  []string
	ROutAttrs  []string
	LOutPrefix string
	ROutPrefix string

	// QgramSize is only consulted for EditDistance's prefix-length formula
	// (spec.md §4.2: prefix_len = q*tau + 1).
	QgramSize int
}

// Validate implements the "configuration failure surfaced before probing
// starts" rule (spec.md §4.8, §7 InvalidConfig).
func (c Config) Validate() error {
	if !CompOpAllowed(c.Measure, c.CompOp) {
		return simerr.New(simerr.InvalidConfig, "comp_op", "operator "+c.CompOp.String()+" not allowed for "+c.Measure.String())
	}
	switch c.Measure {
	case Overlap:
		if c.Threshold < 1 || c.Threshold != math.Trunc(c.Threshold) {
			return simerr.New(simerr.InvalidConfig, "threshold", "OVERLAP requires an integer threshold >= 1")
		}
	case EditDistance:
		if c.Threshold < 1 || c.Threshold != math.Trunc(c.Threshold) {
			return simerr.New(simerr.InvalidConfig, "threshold", "EDIT_DISTANCE requires an integer threshold >= 1")
		}
		if c.QgramSize < 1 {
			return simerr.New(simerr.InvalidConfig, "qgram_size", "EDIT_DISTANCE requires qgram_size >= 1")
		}
	default:
		if c.Threshold <= 0 || c.Threshold > 1 {
			return simerr.New(simerr.InvalidConfig, "threshold", "fractional measures require 0 < threshold <= 1")
		}
	}
	return nil
}

// Pair is one emitted joined row: the matching keys, the similarity score
// (or edit distance, as a float64 for a uniform shape), and the selected,
// renamed passthrough attributes from each side (spec.md §6's output
// shape; §9's "opaque row handles" note — attrs are projected here at
// emit time, never earlier).
type Pair struct {
	LKey, RKey string
	Score      float64
	LAttrs     map[string]string
	RAttrs     map[string]string
}

// Result is the terminal DONE state's assembled pair list.
type Result struct {
	Pairs []Pair
}

// Driver composes C2-C8 for one concrete similarity measure into the
// matched-pair stream (spec.md §2 C9), advancing through the
// INIT -> TOKENIZE_ORDERING -> BUILD_INDEX -> PROBE -> EMIT -> DONE state
// machine in Run, mirroring the teacher's explicit multi-stage Search
// pipeline (qgram/scorer.go: Parse -> Candidates -> Verify -> Score -> Rank).
type Driver struct {
	cfg       Config
	tokenizer Tokenizer
}

// NewDriver validates cfg and, for EDIT_DISTANCE, checks that tok is
// q-gram based (spec.md §7's "wrong tokenizer type for measure").
func NewDriver(cfg Config, tok Tokenizer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Measure == EditDistance && !isQgramTokenizer(tok) {
		return nil, simerr.New(simerr.InvalidConfig, "tokenizer", "EDIT_DISTANCE requires a q-gram tokenizer")
	}
	return &Driver{cfg: cfg, tokenizer: tok}, nil
}

// Run executes one full join over l and r and returns the matched pairs.
// ctx is checked between R records only, a defensive ambient concern: the
// core itself has no suspension points (spec.md §5), but a caller running
// a long single-threaded join must still be able to abandon it.
func (d *Driver) Run(ctx context.Context, l, r record.Table) (Result, error) {
	setMode := d.cfg.Measure != Overlap && d.cfg.Measure != EditDistance
	probeTok := WrapSetMode(d.tokenizer, setMode)

	// TOKENIZE_ORDERING
	lAttrs := make([]string, len(l.Records))
	for i, rec := range l.Records {
		lAttrs[i] = rec.JoinAttr
	}
	rAttrs := make([]string, len(r.Records))
	for i, rec := range r.Records {
		rAttrs[i] = rec.JoinAttr
	}
	ordering := BuildOrdering(DocumentFrequency(d.tokenizer, lAttrs, rAttrs))

	// BUILD_INDEX
	useEditDistance := d.cfg.Measure == EditDistance
	prefixIdx := NewPrefixIndex()
	var posIdx *PositionIndex
	if !useEditDistance {
		posIdx = NewPositionIndex()
	}

	lOrdered := make([]OrderedTokenList, len(l.Records))
	for i, rec := range l.Records {
		ordered := OrderUsing(probeTok.Tokenize(rec.JoinAttr), ordering)
		lOrdered[i] = ordered
		prefixLen := PrefixLength(len(ordered), d.cfg.Measure, d.cfg.Threshold, d.cfg.QgramSize)
		if useEditDistance {
			prefixIdx.Insert(uint32(i), ordered, prefixLen)
		} else {
			posIdx.Insert(uint32(i), ordered, prefixLen)
		}
	}

	// PROBE + EMIT
	var pairs []Pair
	for _, rrec := range r.Records {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		rOrdered := OrderUsing(probeTok.Tokenize(rrec.JoinAttr), ordering)
		nr := len(rOrdered)

		if nr == 0 {
			if d.cfg.AllowEmpty {
				score := emptyPairScore(d.cfg.Measure)
				for i, lrec := range l.Records {
					if len(lOrdered[i]) == 0 {
						pairs = append(pairs, d.emit(lrec, rrec, score))
					}
				}
			}
			continue
		}

		rPrefixLen := PrefixLength(nr, d.cfg.Measure, d.cfg.Threshold, d.cfg.QgramSize)

		if useEditDistance {
			// Config.Validate already rejects a non-integer threshold for
			// EDIT_DISTANCE, so tau is the single coerced value both the
			// size-bound pruning and the exact verification consume.
			tau := int(d.cfg.Threshold)
			lower, upper := EditDistanceSizeBound(utf8.RuneCountInString(rrec.JoinAttr), tau)
			for _, cid := range PrefixFilterCandidates(prefixIdx, rOrdered[:rPrefixLen]) {
				lrec := l.Records[cid]
				llen := utf8.RuneCountInString(lrec.JoinAttr)
				if llen < lower || llen > upper {
					continue
				}
				dist, ok := VerifyEditDistancePair(lrec.JoinAttr, rrec.JoinAttr, d.cfg.CompOp, float64(tau))
				if ok {
					pairs = append(pairs, d.emit(lrec, rrec, float64(dist)))
				}
			}
			continue
		}

		for cid := range PositionFilterCandidates(posIdx, rOrdered, rPrefixLen, d.cfg.Measure, d.cfg.Threshold) {
			lrec := l.Records[cid]
			score, ok := VerifyPair(lOrdered[cid], rOrdered, d.cfg.Measure, d.cfg.CompOp, d.cfg.Threshold)
			if ok {
				pairs = append(pairs, d.emit(lrec, rrec, score))
			}
		}
	}

	return Result{Pairs: pairs}, nil
}

// emptyPairScore is spec.md §4.8's empty-record policy score: 1.0 for the
// fractional set measures, 0 for Overlap and EditDistance.
func emptyPairScore(m SimMeasure) float64 {
	switch m {
	case Overlap, EditDistance:
		return 0
	default:
		return 1.0
	}
}

func (d *Driver) emit(l, r record.Record, score float64) Pair {
	p := Pair{LKey: l.Key, RKey: r.Key, Score: score}
	if len(d.cfg.LOutAttrs) > 0 {
		p.LAttrs = projectAttrs(l.Attrs, d.cfg.LOutAttrs, d.cfg.LOutPrefix)
	}
	if len(d.cfg.ROutAttrs) > 0 {
		p.RAttrs = projectAttrs(r.Attrs, d.cfg.ROutAttrs, d.cfg.ROutPrefix)
	}
	return p
}

func projectAttrs(attrs map[string]string, keys []string, prefix string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[prefix+k] = attrs[k]
	}
	return out
}
