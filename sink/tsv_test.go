package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph/model"
)

func TestTSVStore(t *testing.T) {
	dir := t.TempDir()
	snk, err := NewTSV(dir)
	if err != nil {
		t.Fatal(err)
	}

	organisms := []*model.Organism{
		{Abbreviation: "phalu", TaxonID: null.StringFrom("3914"), Name: null.StringFrom("Phaseolus lunatus")},
	}
	if err := snk.Store(organisms); err != nil {
		t.Fatal(err)
	}
	if err := snk.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "organism.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "\t") {
		t.Error("header is not tab-delimited")
	}
	row := strings.Split(lines[1], "\t")
	if len(row) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(row))
	}
	if row[0] != "phalu" || row[1] != "3914" {
		t.Errorf("unexpected row content: %q", lines[1])
	}
}

func TestTSVSkipsEmptyBatches(t *testing.T) {
	dir := t.TempDir()
	snk, err := NewTSV(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := snk.Store([]*model.Gene{}); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "gene.tsv")); !os.IsNotExist(err) {
		t.Error("an empty batch must not create a table file")
	}
}
