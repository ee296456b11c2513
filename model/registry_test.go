package model

import (
	"errors"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph"
)

func TestRegistryDedup(t *testing.T) {
	reg := NewRegistry()

	first := reg.Gene("phalu.G27455.gnm1.ann1.gene1")
	first.Score = null.FloatFrom(1.0)

	second := reg.Gene("phalu.G27455.gnm1.ann1.gene1")
	if first != second {
		t.Fatal("two calls with the same key must return the same instance")
	}

	// Attributes set through the second reference are visible on the first.
	second.Score = null.FloatFrom(2.0)
	if first.Score.Float64 != 2.0 {
		t.Errorf("expected last-write-wins score 2.0, got %v", first.Score.Float64)
	}
}

func TestProteinSecondaryIdentifier(t *testing.T) {
	reg := NewRegistry()

	p := reg.Protein("phalu.G27455.gnm1.ann1.tig000546640010.1")
	if !p.SecondaryIdentifier.Valid {
		t.Fatal("expected a derived secondary identifier")
	}
	if p.SecondaryIdentifier.String != "phalu.G27455.gnm1.ann1.tig000546640010" {
		t.Errorf("unexpected secondary identifier %s", p.SecondaryIdentifier.String)
	}
}

func TestCollectionAccumulatesWithoutDuplicates(t *testing.T) {
	reg := NewRegistry()

	fam := reg.GeneFamily("legfed_v1_0.L_C5SVGS")
	x := reg.Gene("phalu.G27455.gnm1.ann1.geneX")
	y := reg.Gene("phalu.G27455.gnm1.ann1.geneY")

	fam.AddGene(x)
	fam.AddGene(y)
	fam.AddGene(x)

	if len(fam.Genes) != 2 {
		t.Errorf("expected 2 genes, got %d", len(fam.Genes))
	}
}

func TestWireContextFromReadme(t *testing.T) {
	reg := NewRegistry()
	org := &Organism{Abbreviation: "glyma", TaxonID: null.StringFrom("3847")}
	ctx := &Context{
		Organism: org,
		Strain:   &Strain{Identifier: "Wm82", Organism: org},
		DataSet:  &DataSet{Name: "test set", Licence: DefaultLicence},
	}

	g := reg.Gene("someGene")
	s := reg.GenotypingSample("SAMPLE_01")

	if err := reg.WireContext(ctx); err != nil {
		t.Fatal(err)
	}
	if g.Organism != ctx.Organism || g.Strain != ctx.Strain || g.DataSet != ctx.DataSet {
		t.Error("gene did not receive the shared context")
	}
	if s.Organism != ctx.Organism || s.Strain != ctx.Strain {
		t.Error("sample did not receive the shared context")
	}
}

func TestWireContextDerivesFromIdentifier(t *testing.T) {
	reg := NewRegistry()
	g := reg.Gene("phalu.G27455.gnm1.ann1.gene1")

	if err := reg.WireContext(&Context{}); err != nil {
		t.Fatal(err)
	}
	if g.Organism == nil || g.Organism.Abbreviation != "phalu" {
		t.Fatal("expected organism derived from identifier prefix")
	}
	if g.Strain == nil || g.Strain.Identifier != "G27455" {
		t.Fatal("expected strain derived from identifier prefix")
	}

	// The derived organism is shared, not duplicated.
	g2 := reg.Gene("phalu.G27455.gnm1.ann1.gene2")
	if err := reg.WireContext(&Context{}); err != nil {
		t.Fatal(err)
	}
	if g2.Organism != g.Organism {
		t.Error("expected one Organism instance per gensp")
	}
}

func TestWireContextUnresolvableIsFatal(t *testing.T) {
	reg := NewRegistry()
	reg.GenotypingSample("SAMPLE_01")

	err := reg.WireContext(&Context{})
	if err == nil {
		t.Fatal("expected a reference resolution error")
	}
	var refErr lisgraph.ReferenceResolutionError
	if !errors.As(err, &refErr) {
		t.Errorf("expected ReferenceResolutionError, got %T", err)
	}
}

func TestFamilySizeStampedAtWire(t *testing.T) {
	reg := NewRegistry()
	fam := reg.GeneFamily("legfed_v1_0.L_C5SVGS")
	fam.AddProtein(reg.Protein("phalu.G27455.gnm1.ann1.tig1.1"))
	fam.AddProtein(reg.Protein("phalu.G27455.gnm1.ann1.tig2.1"))

	if err := reg.WireContext(&Context{}); err != nil {
		t.Fatal(err)
	}
	if !fam.Size.Valid || fam.Size.Int64 != 2 {
		t.Errorf("expected family size 2, got %+v", fam.Size)
	}
}
