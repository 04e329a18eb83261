package record

import (
	"errors"
	"strings"
	"testing"

	"github.com/kittclouds/simjoin/pkg/simjoin/simerr"
)

func TestReadCSVBasic(t *testing.T) {
	csvData := "id,name,city\n1,apple inc,NYC\n2,orange co,SF\n"
	tbl, err := ReadCSV("l", strings.NewReader(csvData), "id", "name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(tbl.Records))
	}
	if tbl.Records[0].Key != "1" || tbl.Records[0].JoinAttr != "apple inc" {
		t.Fatalf("unexpected first record: %+v", tbl.Records[0])
	}
	if tbl.Records[0].Attrs["city"] != "NYC" {
		t.Fatalf("expected passthrough attr city=NYC, got %q", tbl.Records[0].Attrs["city"])
	}
}

func TestReadCSVDuplicateKeyFails(t *testing.T) {
	csvData := "id,name\n1,a\n1,b\n"
	_, err := ReadCSV("l", strings.NewReader(csvData), "id", "name")
	if err == nil {
		t.Fatal("expected error for duplicate key")
	}
	if !errors.Is(err, simerr.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestReadCSVNullKeyFails(t *testing.T) {
	csvData := "id,name\n,a\n"
	_, err := ReadCSV("l", strings.NewReader(csvData), "id", "name")
	if !errors.Is(err, simerr.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestReadCSVMissingColumnFails(t *testing.T) {
	csvData := "id,name\n1,a\n"
	_, err := ReadCSV("l", strings.NewReader(csvData), "id", "missing")
	if !errors.Is(err, simerr.InvalidInput) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tbl := Table{Name: "t", Records: []Record{{Key: "a"}, {Key: "b"}}}
	if err := Validate(tbl, "id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := Table{Name: "t", Records: []Record{{Key: "a"}, {Key: "a"}}}
	if err := Validate(dup, "id"); !errors.Is(err, simerr.InvalidInput) {
		t.Fatalf("expected InvalidInput for dup keys, got %v", err)
	}
}
