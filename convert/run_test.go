package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/model"
)

// memSink collects batches in arrival order.
type memSink struct {
	batches []interface{}
}

func (m *memSink) Store(rows interface{}) error {
	m.batches = append(m.batches, rows)
	return nil
}

func (m *memSink) Close() error { return nil }

const gfaFile = "phalu.G27455.gnm1.ann1.JD7C.legfed_v1_0.M65K.gfa.tsv"

const gfaContent = "# comment\n" +
	"ScoreMeaning\te-value\n" +
	"phalu.G27455.gnm1.ann1.geneA\tlegfed_v1_0.L_C5SVGS\tphalu.G27455.gnm1.ann1.geneA.1\t2.4e-68\n" +
	"phalu.G27455.gnm1.ann1.geneB\tlegfed_v1_0.L_C5SVGS\tphalu.G27455.gnm1.ann1.geneB.1\n"

func TestRunStateMachine(t *testing.T) {
	conv, err := ForFile(gfaFile)
	if err != nil {
		t.Fatal(err)
	}
	run := NewRun(conv, &memSink{})

	if run.State() != StateInit {
		t.Fatal("expected StateInit")
	}
	if err := run.ScanFile(gfaFile, strings.NewReader(gfaContent)); err != nil {
		t.Fatal(err)
	}
	if run.State() != StateDataScanned {
		t.Fatal("expected StateDataScanned")
	}
	if err := run.Close(); err != nil {
		t.Fatal(err)
	}
	if run.State() != StateEmitted {
		t.Fatal("expected StateEmitted")
	}
	if err := run.Close(); err == nil {
		t.Fatal("closing an emitted run must fail")
	}
}

func TestRunWithoutDataIsFatal(t *testing.T) {
	conv, _ := ForKind("gfa")
	run := NewRun(conv, &memSink{})

	if err := run.Close(); err == nil {
		t.Fatal("a run with no scanned data must fail")
	}
}

func TestMissingMandatoryMetadata(t *testing.T) {
	conv, _ := ForKind("vcf")
	snk := &memSink{}
	run := NewRun(conv, snk)

	err := run.ScanFile("glyma.Wm82.gnm2.div.G1000.vcf", strings.NewReader(""))
	if err == nil {
		t.Fatal("scanning VCF without metadata must fail")
	}
	var missing lisgraph.MissingMetadataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingMetadataError, got %T", err)
	}
	if len(snk.batches) != 0 {
		t.Error("nothing may reach the sink on a failed run")
	}
}

func TestMetadataMustPrecedeData(t *testing.T) {
	conv, _ := ForKind("gfa")
	run := NewRun(conv, &memSink{})

	if err := run.ScanFile(gfaFile, strings.NewReader(gfaContent)); err != nil {
		t.Fatal(err)
	}
	if err := run.LoadMetadata("README.yml", strings.NewReader("identifier: x\n")); err == nil {
		t.Fatal("metadata after data must fail")
	}
}

func TestEmissionOrderContextFirst(t *testing.T) {
	conv, _ := ForKind("gfa")
	snk := &memSink{}
	run := NewRun(conv, snk)

	md := "identifier: G27455.gnm1.ann1.legfed_v1_0\n" +
		"taxid: 3884\n" +
		"scientific_name_abbrev: phalu\n" +
		"genotype:\n  - G27455\n"
	if err := run.LoadMetadata("README.yml", strings.NewReader(md)); err != nil {
		t.Fatal(err)
	}
	if err := run.ScanFile(gfaFile, strings.NewReader(gfaContent)); err != nil {
		t.Fatal(err)
	}
	if err := run.Close(); err != nil {
		t.Fatal(err)
	}

	if len(snk.batches) == 0 {
		t.Fatal("expected emitted batches")
	}
	if _, ok := snk.batches[0].([]*model.DataSource); !ok {
		t.Errorf("expected the data source first, got %T", snk.batches[0])
	}

	// Genes must be emitted after their family.
	famIdx, geneIdx := -1, -1
	for i, b := range snk.batches {
		switch b.(type) {
		case []*model.GeneFamily:
			famIdx = i
		case []*model.Gene:
			geneIdx = i
		}
	}
	if famIdx < 0 || geneIdx < 0 || famIdx > geneIdx {
		t.Errorf("expected families (batch %d) before genes (batch %d)", famIdx, geneIdx)
	}
}

func TestIdempotentReruns(t *testing.T) {
	counts := func() map[string]int {
		conv, _ := ForKind("gfa")
		run := NewRun(conv, &memSink{})
		if err := run.ScanFile(gfaFile, strings.NewReader(gfaContent)); err != nil {
			t.Fatal(err)
		}
		if err := run.Close(); err != nil {
			t.Fatal(err)
		}
		return run.Registry().Counts()
	}

	first := counts()
	second := counts()
	for kind, n := range first {
		if second[kind] != n {
			t.Errorf("%s: first run had %d, second %d", kind, n, second[kind])
		}
	}
}
