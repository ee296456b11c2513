package lisfile

import (
	"errors"
	"testing"

	"github.com/legumeinfo/lisgraph"
)

func TestDecomposeGFA(t *testing.T) {
	fn, err := Decompose("phalu.G27455.gnm1.ann1.JD7C.legfed_v1_0.M65K.gfa.tsv", KindGFA)
	if err != nil {
		t.Fatal(err)
	}
	if len(fn.Tokens) != 9 {
		t.Errorf("expected 9 tokens, got %d", len(fn.Tokens))
	}
	if fn.Version != "legfed_v1_0" {
		t.Errorf("expected version legfed_v1_0, got %s", fn.Version)
	}
	if fn.Gensp != "phalu" || fn.Strain != "G27455" {
		t.Errorf("organism tokens mismatch: %s %s", fn.Gensp, fn.Strain)
	}
	if fn.Assembly != "gnm1" || fn.Annotation != "ann1" {
		t.Errorf("assembly tokens mismatch: %s %s", fn.Assembly, fn.Annotation)
	}
}

func TestDecomposeGFAGzip(t *testing.T) {
	fn, err := Decompose("phalu.G27455.gnm1.ann1.JD7C.legfed_v1_0.M65K.gfa.tsv.gz", KindGFA)
	if err != nil {
		t.Fatal(err)
	}
	if fn.Version != "legfed_v1_0" {
		t.Errorf("expected version legfed_v1_0, got %s", fn.Version)
	}
}

func TestDecomposeGFAWrongCountDefaults(t *testing.T) {
	// Family files with a short name warn and fall back to the default
	// version rather than failing.
	fn, err := Decompose("phalu.M65K.gfa.tsv", KindGFA)
	if err != nil {
		t.Fatal(err)
	}
	if fn.Version != "legfed_v1_0" {
		t.Errorf("expected default version, got %s", fn.Version)
	}
}

func TestDecomposeHSHStrict(t *testing.T) {
	if _, err := Decompose("legume.pan1.X2PC.clust.hsh.tsv", KindHSH); err != nil {
		t.Fatal(err)
	}

	_, err := Decompose("legume.pan1.hsh.tsv", KindHSH)
	if err == nil {
		t.Fatal("expected an error for a short hsh filename")
	}
	var parseErr lisgraph.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected ParseError, got %T", err)
	}
}

func TestDecomposeHSHVersion(t *testing.T) {
	fn, err := Decompose("legume.pan1.X2PC.clust.hsh.tsv", KindHSH)
	if err != nil {
		t.Fatal(err)
	}
	if fn.Version != "pan1" {
		t.Errorf("expected version pan1, got %s", fn.Version)
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		ok   bool
	}{
		{"phalu.G27455.gnm1.ann1.JD7C.legfed_v1_0.M65K.gfa.tsv", KindGFA, true},
		{"phalu.G27455.gnm1.ann1.JD7C.legfed_v1_0.M65K.gfa.tsv.gz", KindGFA, true},
		{"legume.pan1.X2PC.clust.hsh.tsv", KindHSH, true},
		{"phavu.G19833.gnm2.ann1.PB8d.pathway.tsv", KindPathway, true},
		{"phavu.G19833.gnm2.ann1.PB8d.iprscan.gff3", KindMatch, true},
		{"glyma.Wm82.gnm2.div.G1000.vcf.gz", KindVCF, true},
		{"legfed_v1_0.M65K.info_descriptors.tsv", KindDescriptor, true},
		{"notes.txt", "", false},
	}

	for _, c := range cases {
		kind, ok := KindOf(c.name)
		if ok != c.ok || kind != c.kind {
			t.Errorf("%s: got (%s, %v), want (%s, %v)", c.name, kind, ok, c.kind, c.ok)
		}
	}
}
