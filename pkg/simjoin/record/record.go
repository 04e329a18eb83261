// Package record holds the tabular data model the join driver operates on:
// an immutable Record with a primary key and a join-attribute string, plus
// opaque passthrough attributes, and a Table loader over CSV.
package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kittclouds/simjoin/pkg/simjoin/simerr"
)

// Record is an immutable row: a unique key, the text compared by the join,
// and any other columns passed through verbatim into output rows. The core
// never interprets Attrs; it only carries the handle through to emit time.
type Record struct {
	Key      string
	JoinAttr string
	Attrs    map[string]string
}

// Table is a named collection of records sharing one schema.
type Table struct {
	Name    string
	Records []Record
}

// LoadCSV reads a CSV file into a Table. The first row is the header; keyCol
// and joinCol name the key and join-attribute columns. Every other column
// becomes an opaque passthrough attribute. Keys must be unique and non-empty,
// or LoadCSV returns an *simerr.Error wrapping simerr.InvalidInput.
func LoadCSV(name, path, keyCol, joinCol string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("record.LoadCSV: %w", err)
	}
	defer f.Close()
	return ReadCSV(name, f, keyCol, joinCol)
}

// ReadCSV is the io.Reader-based counterpart of LoadCSV, used directly by
// tests and by callers that already have the data in memory.
func ReadCSV(name string, r io.Reader, keyCol, joinCol string) (Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return Table{}, fmt.Errorf("record.ReadCSV: %w", err)
	}

	keyIdx, joinIdx := -1, -1
	for i, h := range header {
		if h == keyCol {
			keyIdx = i
		}
		if h == joinCol {
			joinIdx = i
		}
	}
	if keyIdx == -1 {
		return Table{}, simerr.New(simerr.InvalidInput, keyCol, "key column not found in "+name)
	}
	if joinIdx == -1 {
		return Table{}, simerr.New(simerr.InvalidInput, joinCol, "join column not found in "+name)
	}

	seen := make(map[string]bool)
	var recs []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("record.ReadCSV: %w", err)
		}

		key := row[keyIdx]
		if key == "" {
			return Table{}, simerr.New(simerr.InvalidInput, keyCol, "null key in "+name)
		}
		if seen[key] {
			return Table{}, simerr.New(simerr.InvalidInput, keyCol, "duplicate key "+key+" in "+name)
		}
		seen[key] = true

		attrs := make(map[string]string, len(header)-2)
		for i, h := range header {
			if i == keyIdx || i == joinIdx {
				continue
			}
			attrs[h] = row[i]
		}

		recs = append(recs, Record{Key: key, JoinAttr: row[joinIdx], Attrs: attrs})
	}

	return Table{Name: name, Records: recs}, nil
}

// Validate checks the uniqueness/non-null key invariant for tables built by
// hand rather than through LoadCSV/ReadCSV.
func Validate(t Table, keyCol string) error {
	seen := make(map[string]bool, len(t.Records))
	for _, r := range t.Records {
		if r.Key == "" {
			return simerr.New(simerr.InvalidInput, keyCol, "null key in "+t.Name)
		}
		if seen[r.Key] {
			return simerr.New(simerr.InvalidInput, keyCol, "duplicate key "+r.Key+" in "+t.Name)
		}
		seen[r.Key] = true
	}
	return nil
}
