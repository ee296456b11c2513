package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectRunsKeysOutputOnRelativePath(t *testing.T) {
	root := t.TempDir()

	// Two collections with the same base name under different parents.
	gfa := "phalu.G27455.gnm1.ann1.JD7C.legfed_v1_0.M65K.gfa.tsv"
	for _, parent := range []string{"phalu", "phavu"} {
		dir := filepath.Join(root, parent, "annotations")
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, gfa), []byte("#\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := collectRuns(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].rel == runs[1].rel {
		t.Errorf("both runs key output on %q; collections would overwrite each other", runs[0].rel)
	}
	for _, rd := range runs {
		if rd.rel == "annotations" {
			t.Errorf("run key %q dropped the parent directory", rd.rel)
		}
	}
}

func TestCollectRunsFindsReadmes(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "README.coll.yml"), []byte("identifier: coll\n"), 0644); err != nil {
		t.Fatal(err)
	}
	hsh := "legume.pan1.X2PC.clust.hsh.tsv"
	if err := os.WriteFile(filepath.Join(root, hsh), []byte("#\n"), 0644); err != nil {
		t.Fatal(err)
	}

	runs, err := collectRuns(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].readme == "" {
		t.Error("the collection's README was not attached to its run")
	}
	if len(runs[0].dataFiles) != 1 {
		t.Errorf("expected 1 data file, got %d", len(runs[0].dataFiles))
	}
}
