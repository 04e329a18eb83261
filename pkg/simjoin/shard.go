package simjoin

import (
	"context"
	"sync"

	"github.com/kittclouds/simjoin/pkg/simjoin/record"
)

// ShardAndJoin is the external process-level-parallelism collaborator
// spec.md §5 names as out of scope for the core, made concrete: it
// partitions r into nJobs disjoint slices and runs one Driver per shard
// concurrently. Each shard's Driver builds its own token ordering and
// L-side indexes; the goroutines share only l, cfg and tok, which they
// read but never modify. The repository has no direct errgroup dependency, so this
// follows the teacher's own preference for explicit sync primitives
// (plain sync.WaitGroup plus per-goroutine error capture) over a
// dependency-heavy concurrency helper.
//
// Concatenating the shard outputs must yield the same set Run(l, r) would
// for nJobs=1 (spec.md §8 property 6, shard-union equality); pair order
// across shards is unspecified.
func ShardAndJoin(ctx context.Context, cfg Config, tok Tokenizer, l, r record.Table, nJobs int) (Result, error) {
	if nJobs < 1 {
		nJobs = 1
	}
	if nJobs > len(r.Records) {
		nJobs = len(r.Records)
	}
	if nJobs <= 1 {
		d, err := NewDriver(cfg, tok)
		if err != nil {
			return Result{}, err
		}
		return d.Run(ctx, l, r)
	}

	shards := shardRecords(r.Records, nJobs)

	var wg sync.WaitGroup
	results := make([]Result, len(shards))
	errs := make([]error, len(shards))

	for i, shard := range shards {
		wg.Add(1)
		go func(i int, shard []record.Record) {
			defer wg.Done()
			d, err := NewDriver(cfg, tok)
			if err != nil {
				errs[i] = err
				return
			}
			res, err := d.Run(ctx, l, record.Table{Name: r.Name, Records: shard})
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = res
		}(i, shard)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}

	var merged Result
	for _, res := range results {
		merged.Pairs = append(merged.Pairs, res.Pairs...)
	}
	return merged, nil
}

func shardRecords(records []record.Record, nJobs int) [][]record.Record {
	shards := make([][]record.Record, nJobs)
	base := len(records) / nJobs
	rem := len(records) % nJobs
	start := 0
	for i := 0; i < nJobs; i++ {
		size := base
		if i < rem {
			size++
		}
		shards[i] = records[start : start+size]
		start += size
	}
	return shards
}
