// Package readme parses the sidecar YAML metadata record that accompanies
// each datastore collection and merges it into the run's shared context.
package readme

import (
	"io"
	"strconv"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"

	"github.com/legumeinfo/lisgraph"
	"github.com/legumeinfo/lisgraph/model"
	"gopkg.in/guregu/null.v3"
)

// Shared provenance of every datastore release.
const (
	DataSourceName = "LIS Datastore"
	DataSourceURL  = "https://data.legumeinfo.org/"
)

// Metadata is the key-value content of one README record. Which keys are
// mandatory varies by converter; see Require.
type Metadata struct {
	Identifier           string   `yaml:"identifier"`
	Synopsis             string   `yaml:"synopsis"`
	Description          string   `yaml:"description"`
	TaxID                int      `yaml:"taxid"`
	ScientificName       string   `yaml:"scientific_name"`
	ScientificNameAbbrev string   `yaml:"scientific_name_abbrev"`
	Genotype             []string `yaml:"genotype"`
	GenotypingPlatform   string   `yaml:"genotyping_platform"`
	Bioproject           string   `yaml:"bioproject"`
	GenotypingMethod     string   `yaml:"genotyping_method"`
	Contributors         string   `yaml:"contributors"`
	PublicationDOI       string   `yaml:"publication_doi"`
	PublicationTitle     string   `yaml:"publication_title"`
	SourceURL            string   `yaml:"source"`
	License              string   `yaml:"license"`

	// File is the README filename, kept for error reporting.
	File string `yaml:"-"`
}

// Parse decodes one YAML README record.
func Parse(name string, r io.Reader) (*Metadata, error) {
	md := &Metadata{File: name}

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(md); err != nil {
		return nil, pfx.Err(lisgraph.ParseError{File: name, Msg: "malformed README: " + err.Error()})
	}

	return md, nil
}

// Require validates that every named key carries a non-empty value.
// Absence of a mandatory key is fatal for the run.
func (md *Metadata) Require(keys ...string) error {
	for _, key := range keys {
		var have bool
		switch key {
		case "identifier":
			have = md.Identifier != ""
		case "synopsis":
			have = md.Synopsis != ""
		case "description":
			have = md.Description != ""
		case "taxid":
			have = md.TaxID != 0
		case "scientific_name_abbrev":
			have = md.ScientificNameAbbrev != ""
		case "genotype":
			have = len(md.Genotype) > 0
		}
		if !have {
			return lisgraph.MissingMetadataError{File: md.File, Key: key}
		}
	}

	return nil
}

// Context resolves the shared run context from the metadata: organism (by
// gensp abbreviation, stamped with the taxonomic id), strain, dataset
// (licence defaulting to the documented constant), data source, and an
// optional publication. Organism and strain are obtained through the
// registry so README-declared and identifier-derived context share one
// instance per key.
func (md *Metadata) Context(reg *model.Registry) *model.Context {
	ctx := &model.Context{
		DataSource: &model.DataSource{
			Name: DataSourceName,
			URL:  null.StringFrom(DataSourceURL),
		},
	}

	if md.ScientificNameAbbrev != "" {
		org := reg.Organism(md.ScientificNameAbbrev)
		if md.TaxID != 0 {
			org.TaxonID = null.StringFrom(strconv.Itoa(md.TaxID))
		}
		if md.ScientificName != "" {
			org.Name = null.StringFrom(md.ScientificName)
		}
		ctx.Organism = org

		if len(md.Genotype) > 0 {
			ctx.Strain = reg.Strain(md.ScientificNameAbbrev, md.Genotype[0])
		}
	}

	if md.Identifier != "" {
		licence := md.License
		if licence == "" {
			licence = model.DefaultLicence
		}
		ds := &model.DataSet{
			Name:       md.Identifier,
			Licence:    licence,
			DataSource: ctx.DataSource,
		}
		if md.Synopsis != "" {
			ds.Synopsis = null.StringFrom(md.Synopsis)
		}
		if md.Description != "" {
			ds.Description = null.StringFrom(md.Description)
		}
		if md.SourceURL != "" {
			ds.URL = null.StringFrom(md.SourceURL)
		}
		ctx.DataSet = ds
	}

	if md.PublicationDOI != "" || md.PublicationTitle != "" {
		pub := &model.Publication{}
		if md.PublicationDOI != "" {
			pub.DOI = null.StringFrom(md.PublicationDOI)
		}
		if md.PublicationTitle != "" {
			pub.Title = null.StringFrom(md.PublicationTitle)
		}
		ctx.Publication = pub
		if ctx.DataSet != nil {
			ctx.DataSet.Publication = pub
		}
	}

	return ctx
}
