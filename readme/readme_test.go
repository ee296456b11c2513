package readme

import (
	"errors"
	"strings"
	"testing"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/model"
)

const sampleReadme = `---
identifier: G27455.gnm1.ann1.legfed_v1_0
synopsis: Gene family assignments for Phaseolus lunatus G27455
description: Lima bean gene family membership computed against legfed_v1_0.
taxid: 3884
scientific_name: Phaseolus lunatus
scientific_name_abbrev: phalu
genotype:
  - G27455
publication_doi: 10.1093/example/101
publication_title: The lima bean genome
`

func TestParseAndContext(t *testing.T) {
	md, err := Parse("README.G27455.yml", strings.NewReader(sampleReadme))
	if err != nil {
		t.Fatal(err)
	}
	if md.Identifier != "G27455.gnm1.ann1.legfed_v1_0" {
		t.Errorf("unexpected identifier %s", md.Identifier)
	}
	if md.TaxID != 3884 {
		t.Errorf("unexpected taxid %d", md.TaxID)
	}

	reg := model.NewRegistry()
	ctx := md.Context(reg)

	if ctx.Organism == nil || ctx.Organism.Abbreviation != "phalu" {
		t.Fatal("expected phalu organism in context")
	}
	if ctx.Organism.TaxonID.String != "3884" {
		t.Errorf("unexpected taxon id %s", ctx.Organism.TaxonID.String)
	}
	if ctx.Strain == nil || ctx.Strain.Identifier != "G27455" {
		t.Error("expected G27455 strain in context")
	}
	if ctx.DataSet == nil || ctx.DataSet.Licence != model.DefaultLicence {
		t.Error("expected dataset with the default licence")
	}
	if ctx.Publication == nil || ctx.Publication.DOI.String != "10.1093/example/101" {
		t.Error("expected a publication resolved by DOI")
	}

	// The context organism is the registry's organism for that gensp.
	if reg.Organism("phalu") != ctx.Organism {
		t.Error("context organism must be registered, not duplicated")
	}
}

func TestRequireMissingKey(t *testing.T) {
	md, err := Parse("README.x.yml", strings.NewReader("synopsis: only a synopsis\n"))
	if err != nil {
		t.Fatal(err)
	}

	err = md.Require("identifier", "synopsis")
	if err == nil {
		t.Fatal("expected an error for the missing identifier")
	}
	var missing lisgraph.MissingMetadataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingMetadataError, got %T", err)
	}
	if missing.Key != "identifier" {
		t.Errorf("expected missing key identifier, got %s", missing.Key)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("README.bad.yml", strings.NewReader(":\nnot yaml: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}
