// Command simjoin runs a similarity join between two CSV tables and
// prints the matched pairs, a thin wiring layer over pkg/simjoin,
// pkg/simjoin/config and pkg/simjoin/record. All matching logic lives in
// the library; this binary only parses flags, loads files, and formats
// output.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/kittclouds/simjoin/pkg/simjoin"
	"github.com/kittclouds/simjoin/pkg/simjoin/config"
	"github.com/kittclouds/simjoin/pkg/simjoin/record"
)

func main() {
	var (
		lPath    = flag.String("l", "", "left table CSV path")
		rPath    = flag.String("r", "", "right table CSV path")
		lKeyCol  = flag.String("l-key", "id", "left table key column")
		rKeyCol  = flag.String("r-key", "id", "right table key column")
		lJoinCol = flag.String("l-join", "value", "left table join-attribute column")
		rJoinCol = flag.String("r-join", "value", "right table join-attribute column")
		cfgPath  = flag.String("config", "", "TOML join configuration")
		qgram    = flag.Int("q", 3, "q-gram size when no tokenizer is specified via config")
		nJobs    = flag.Int("n-jobs", 1, "number of shard workers")
	)
	flag.Parse()

	if *lPath == "" || *rPath == "" || *cfgPath == "" {
		log.Fatal("simjoin: -l, -r and -config are required")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("simjoin: %v", err)
	}

	l, err := record.LoadCSV("L", *lPath, *lKeyCol, *lJoinCol)
	if err != nil {
		log.Fatalf("simjoin: %v", err)
	}
	r, err := record.LoadCSV("R", *rPath, *rKeyCol, *rJoinCol)
	if err != nil {
		log.Fatalf("simjoin: %v", err)
	}

	measure, ok := cfg.Measure()
	if !ok {
		log.Fatalf("simjoin: unknown sim_measure %q", cfg.SimMeasure)
	}
	op, ok := cfg.Op()
	if !ok {
		log.Fatalf("simjoin: unknown comp_op %q", cfg.CompOp)
	}

	driverCfg := simjoin.Config{
		Measure:    measure,
		CompOp:     op,
		Threshold:  cfg.Threshold,
		AllowEmpty: cfg.AllowEmpty,
		LOutAttrs:  cfg.LOutAttrs,
		ROutAttrs:  cfg.ROutAttrs,
		LOutPrefix: cfg.LOutPrefix,
		ROutPrefix: cfg.ROutPrefix,
		QgramSize:  cfg.QgramSize,
	}

	var tok simjoin.Tokenizer
	if measure == simjoin.EditDistance {
		q := cfg.QgramSize
		if q == 0 {
			q = *qgram
		}
		tok = simjoin.NewQgramTokenizer(q)
	} else {
		tok = simjoin.NewWordTokenizer()
	}

	jobs := cfg.NJobs
	if jobs == 0 {
		jobs = *nJobs
	}

	res, err := simjoin.ShardAndJoin(context.Background(), driverCfg, tok, l, r, jobs)
	if err != nil {
		log.Fatalf("simjoin: %v", err)
	}

	writeResult(os.Stdout, res, cfg.OutSimScore)
}

func writeResult(w *os.File, res simjoin.Result, outSimScore bool) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"l_key", "r_key"}
	if outSimScore {
		header = append(header, "score")
	}
	if err := cw.Write(header); err != nil {
		fmt.Fprintln(os.Stderr, "simjoin: write header:", err)
		return
	}

	for _, p := range res.Pairs {
		row := []string{p.LKey, p.RKey}
		if outSimScore {
			row = append(row, strconv.FormatFloat(p.Score, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			fmt.Fprintln(os.Stderr, "simjoin: write row:", err)
			return
		}
	}
}
