package lisgraph

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenGzipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.tsv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("geneA\tfamilyB\n")); err != nil {
		t.Fatal(err)
	}
	gz.Close()
	f.Close()

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "geneA\tfamilyB\n" {
		t.Errorf("expected decompressed content, got %q", got)
	}
}

func TestOpenPlain(t *testing.T) {
	// Detection is by magic bytes, so a plain file with a .gz suffix
	// still reads as plain text.
	path := filepath.Join(t.TempDir(), "data.tsv.gz")
	if err := os.WriteFile(path, []byte("geneA\tfamilyB\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "geneA\tfamilyB\n" {
		t.Errorf("expected plain content, got %q", got)
	}
}

func TestOpenShorterThanGzipHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.tsv")
	if err := os.WriteFile(path, []byte("a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a\n" {
		t.Errorf("expected file content, got %q", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.tsv")); err == nil {
		t.Fatal("opening a missing file must fail")
	}
}
