package sink

import (
	"fmt"

	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph/model"
)

// PathwayGenes marks a batch carrying the pathway/gene many-to-many
// membership rather than the pathway rows themselves.
type PathwayGenes []*model.Pathway

// Rows flattens one homogeneous batch of model entities into its
// warehouse table name and row slice. Both sinks share this mapping.
func Rows(rows interface{}) (string, interface{}, error) {
	switch v := rows.(type) {
	case []*model.Organism:
		out := make([]*OrganismRow, 0, len(v))
		for _, o := range v {
			out = append(out, &OrganismRow{Abbreviation: o.Abbreviation, TaxonID: o.TaxonID, Name: o.Name})
		}
		return "organism", out, nil

	case []*model.Strain:
		out := make([]*StrainRow, 0, len(v))
		for _, s := range v {
			out = append(out, &StrainRow{Identifier: s.Identifier, Organism: organismRef(s.Organism)})
		}
		return "strain", out, nil

	case []*model.DataSource:
		out := make([]*DataSourceRow, 0, len(v))
		for _, d := range v {
			out = append(out, &DataSourceRow{Name: d.Name, URL: d.URL, Description: d.Description})
		}
		return "data_source", out, nil

	case []*model.DataSet:
		out := make([]*DataSetRow, 0, len(v))
		for _, d := range v {
			row := &DataSetRow{
				Name:        d.Name,
				Synopsis:    d.Synopsis,
				Description: d.Description,
				URL:         d.URL,
				Licence:     d.Licence,
				Version:     d.Version,
				Publication: publicationRef(d.Publication),
			}
			if d.DataSource != nil {
				row.DataSource = null.StringFrom(d.DataSource.Name)
			}
			out = append(out, row)
		}
		return "data_set", out, nil

	case []*model.Publication:
		out := make([]*PublicationRow, 0, len(v))
		for _, p := range v {
			out = append(out, &PublicationRow{DOI: p.DOI, Title: p.Title})
		}
		return "publication", out, nil

	case []*model.GeneFamily:
		out := make([]*GeneFamilyRow, 0, len(v))
		for _, f := range v {
			out = append(out, &GeneFamilyRow{
				Identifier:  f.Identifier,
				Version:     f.Version,
				Description: f.Description,
				Size:        f.Size,
				DataSet:     dataSetRef(f.DataSet),
			})
		}
		return "gene_family", out, nil

	case []*model.PanGeneSet:
		out := make([]*PanGeneSetRow, 0, len(v))
		for _, s := range v {
			out = append(out, &PanGeneSetRow{Identifier: s.Identifier, Version: s.Version, DataSet: dataSetRef(s.DataSet)})
		}
		return "pan_gene_set", out, nil

	case []*model.Gene:
		out := make([]*GeneRow, 0, len(v))
		for _, g := range v {
			out = append(out, geneRow(g))
		}
		return "gene", out, nil

	case []*model.Protein:
		out := make([]*ProteinRow, 0, len(v))
		for _, p := range v {
			out = append(out, proteinRow(p))
		}
		return "protein", out, nil

	case []*model.GenotypingStudy:
		out := make([]*GenotypingStudyRow, 0, len(v))
		for _, s := range v {
			out = append(out, &GenotypingStudyRow{
				Identifier:   s.Identifier,
				Synopsis:     s.Synopsis,
				Description:  s.Description,
				Contributors: s.Contributors,
				Accession:    s.Accession,
				Platform:     s.Platform,
				DataSet:      dataSetRef(s.DataSet),
			})
		}
		return "genotyping_study", out, nil

	case []*model.GenotypingSample:
		out := make([]*GenotypingSampleRow, 0, len(v))
		for _, s := range v {
			out = append(out, &GenotypingSampleRow{
				Identifier: s.Identifier,
				Study:      studyRef(s.Study),
				Organism:   organismRef(s.Organism),
				Strain:     strainRef(s.Strain),
				DataSet:    dataSetRef(s.DataSet),
			})
		}
		return "genotyping_sample", out, nil

	case []*model.GeneticMarker:
		out := make([]*GeneticMarkerRow, 0, len(v))
		for _, m := range v {
			out = append(out, &GeneticMarkerRow{
				Identifier: m.Identifier,
				Chromosome: chromosomeRef(m.Chromosome),
				Start:      locStart(m.Location),
				End:        locEnd(m.Location),
				Organism:   organismRef(m.Organism),
				Strain:     strainRef(m.Strain),
				DataSet:    dataSetRef(m.DataSet),
			})
		}
		return "genetic_marker", out, nil

	case []*model.GenotypingRecord:
		out := make([]*GenotypingRecordRow, 0, len(v))
		for _, rec := range v {
			row := &GenotypingRecordRow{
				Identifier: rec.Identifier,
				Ref:        rec.Ref,
				Alt:        rec.Alt,
				Qual:       rec.Qual,
				Filter:     rec.Filter,
				Info:       rec.Info,
				Study:      studyRef(rec.Study),
			}
			if rec.Marker != nil {
				row.Marker = null.StringFrom(rec.Marker.Identifier)
			}
			out = append(out, row)
		}
		return "genotyping_record", out, nil

	case []*model.Genotype:
		out := make([]*GenotypeRow, 0, len(v))
		for _, g := range v {
			row := &GenotypeRow{Value: g.Value, Likelihoods: g.Likelihoods}
			if g.Sample != nil {
				row.Sample = g.Sample.Identifier
			}
			if g.Record != nil {
				row.Record = g.Record.Identifier
			}
			out = append(out, row)
		}
		return "genotype", out, nil

	case []*model.ProteinMatch:
		out := make([]*ProteinMatchRow, 0, len(v))
		for _, m := range v {
			out = append(out, matchRow(m))
		}
		return "protein_match", out, nil

	case []*model.ProteinHmmMatch:
		out := make([]*ProteinMatchRow, 0, len(v))
		for _, m := range v {
			out = append(out, matchRow(&m.ProteinMatch))
		}
		return "protein_hmm_match", out, nil

	case []*model.Pathway:
		out := make([]*PathwayRow, 0, len(v))
		for _, p := range v {
			out = append(out, &PathwayRow{Identifier: p.Identifier, Name: p.Name, DataSet: dataSetRef(p.DataSet)})
		}
		return "pathway", out, nil

	case PathwayGenes:
		out := []*PathwayGeneRow{}
		for _, p := range v {
			for _, g := range p.Genes {
				out = append(out, &PathwayGeneRow{Pathway: p.Identifier, Gene: g.PrimaryIdentifier})
			}
		}
		return "pathway_gene", out, nil

	case []*model.Phenotype:
		out := make([]*PhenotypeRow, 0, len(v))
		for _, p := range v {
			out = append(out, &PhenotypeRow{
				PrimaryIdentifier: p.PrimaryIdentifier,
				Organism:          organismRef(p.Organism),
				Strain:            strainRef(p.Strain),
				DataSet:           dataSetRef(p.DataSet),
			})
		}
		return "phenotype", out, nil

	case []*model.OntologyTerm:
		out := make([]*OntologyTermRow, 0, len(v))
		for _, term := range v {
			out = append(out, &OntologyTermRow{Identifier: term.Identifier})
		}
		return "ontology_term", out, nil

	case []*model.OntologyAnnotation:
		out := make([]*OntologyAnnotationRow, 0, len(v))
		for _, a := range v {
			row := &OntologyAnnotationRow{}
			if a.Term != nil {
				row.Term = a.Term.Identifier
			}
			if a.Phenotype != nil {
				row.Phenotype = null.StringFrom(a.Phenotype.PrimaryIdentifier)
			}
			if a.GeneFamily != nil {
				row.GeneFamily = null.StringFrom(a.GeneFamily.Identifier)
			}
			out = append(out, row)
		}
		return "ontology_annotation", out, nil

	case []*model.Chromosome:
		out := make([]*ChromosomeRow, 0, len(v))
		for _, c := range v {
			out = append(out, &ChromosomeRow{
				SecondaryIdentifier: c.SecondaryIdentifier,
				Organism:            organismRef(c.Organism),
				Strain:              strainRef(c.Strain),
			})
		}
		return "chromosome", out, nil
	}

	return "", nil, fmt.Errorf("sink: unsupported batch type %T", rows)
}
