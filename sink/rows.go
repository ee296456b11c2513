// Package sink persists a finished entity graph to a warehouse target.
// Entities arrive only after finalize succeeds, one homogeneous batch at
// a time, in dependency order.
package sink

import (
	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph/model"
)

// Sink accepts finished entities. rows is a typed slice of model
// pointers; a sink rejects slices of kinds it does not know.
type Sink interface {
	Store(rows interface{}) error
	Close() error
}

// Flat warehouse rows. One struct per table, shared by the TSV and
// SQLite sinks; csv tags drive gocsv, db tags drive sqlx.

type OrganismRow struct {
	Abbreviation string      `csv:"abbreviation" db:"abbreviation"`
	TaxonID      null.String `csv:"taxon_id" db:"taxon_id"`
	Name         null.String `csv:"name" db:"name"`
}

type StrainRow struct {
	Identifier string      `csv:"identifier" db:"identifier"`
	Organism   null.String `csv:"organism" db:"organism"`
}

type DataSourceRow struct {
	Name        string      `csv:"name" db:"name"`
	URL         null.String `csv:"url" db:"url"`
	Description null.String `csv:"description" db:"description"`
}

type DataSetRow struct {
	Name        string      `csv:"name" db:"name"`
	Synopsis    null.String `csv:"synopsis" db:"synopsis"`
	Description null.String `csv:"description" db:"description"`
	URL         null.String `csv:"url" db:"url"`
	Licence     string      `csv:"licence" db:"licence"`
	Version     null.String `csv:"version" db:"version"`
	DataSource  null.String `csv:"data_source" db:"data_source"`
	Publication null.String `csv:"publication" db:"publication"`
}

type PublicationRow struct {
	DOI   null.String `csv:"doi" db:"doi"`
	Title null.String `csv:"title" db:"title"`
}

type GeneFamilyRow struct {
	Identifier  string      `csv:"identifier" db:"identifier"`
	Version     null.String `csv:"version" db:"version"`
	Description null.String `csv:"description" db:"description"`
	Size        null.Int    `csv:"size" db:"size"`
	DataSet     null.String `csv:"data_set" db:"data_set"`
}

type PanGeneSetRow struct {
	Identifier string      `csv:"identifier" db:"identifier"`
	Version    null.String `csv:"version" db:"version"`
	DataSet    null.String `csv:"data_set" db:"data_set"`
}

type GeneRow struct {
	PrimaryIdentifier   string      `csv:"primary_identifier" db:"primary_identifier"`
	SecondaryIdentifier null.String `csv:"secondary_identifier" db:"secondary_identifier"`
	Score               null.Float  `csv:"score" db:"score"`
	ScoreMeaning        null.String `csv:"score_meaning" db:"score_meaning"`
	Family              null.String `csv:"gene_family" db:"gene_family"`
	PanGeneSet          null.String `csv:"pan_gene_set" db:"pan_gene_set"`
	Organism            null.String `csv:"organism" db:"organism"`
	Strain              null.String `csv:"strain" db:"strain"`
	DataSet             null.String `csv:"data_set" db:"data_set"`
}

type ProteinRow struct {
	PrimaryIdentifier   string      `csv:"primary_identifier" db:"primary_identifier"`
	SecondaryIdentifier null.String `csv:"secondary_identifier" db:"secondary_identifier"`
	Score               null.Float  `csv:"score" db:"score"`
	ScoreMeaning        null.String `csv:"score_meaning" db:"score_meaning"`
	Family              null.String `csv:"gene_family" db:"gene_family"`
	PanGeneSet          null.String `csv:"pan_gene_set" db:"pan_gene_set"`
	Organism            null.String `csv:"organism" db:"organism"`
	Strain              null.String `csv:"strain" db:"strain"`
	DataSet             null.String `csv:"data_set" db:"data_set"`
}

type GenotypingStudyRow struct {
	Identifier   string      `csv:"identifier" db:"identifier"`
	Synopsis     null.String `csv:"synopsis" db:"synopsis"`
	Description  null.String `csv:"description" db:"description"`
	Contributors null.String `csv:"contributors" db:"contributors"`
	Accession    null.String `csv:"accession" db:"accession"`
	Platform     null.String `csv:"platform" db:"platform"`
	DataSet      null.String `csv:"data_set" db:"data_set"`
}

type GenotypingSampleRow struct {
	Identifier string      `csv:"identifier" db:"identifier"`
	Study      null.String `csv:"study" db:"study"`
	Organism   null.String `csv:"organism" db:"organism"`
	Strain     null.String `csv:"strain" db:"strain"`
	DataSet    null.String `csv:"data_set" db:"data_set"`
}

type GeneticMarkerRow struct {
	Identifier string      `csv:"identifier" db:"identifier"`
	Chromosome null.String `csv:"chromosome" db:"chromosome"`
	Start      null.Int    `csv:"start" db:"start"`
	End        null.Int    `csv:"end" db:"end"`
	Organism   null.String `csv:"organism" db:"organism"`
	Strain     null.String `csv:"strain" db:"strain"`
	DataSet    null.String `csv:"data_set" db:"data_set"`
}

type GenotypingRecordRow struct {
	Identifier string      `csv:"identifier" db:"identifier"`
	Ref        string      `csv:"ref" db:"ref"`
	Alt        string      `csv:"alt" db:"alt"`
	Qual       null.Float  `csv:"qual" db:"qual"`
	Filter     null.String `csv:"filter" db:"filter"`
	Info       null.String `csv:"info" db:"info"`
	Marker     null.String `csv:"marker" db:"marker"`
	Study      null.String `csv:"study" db:"study"`
}

type GenotypeRow struct {
	Sample      string      `csv:"sample" db:"sample"`
	Record      string      `csv:"record" db:"record"`
	Value       string      `csv:"value" db:"value"`
	Likelihoods null.String `csv:"likelihoods" db:"likelihoods"`
}

type ProteinMatchRow struct {
	PrimaryIdentifier string      `csv:"primary_identifier" db:"primary_identifier"`
	Source            null.String `csv:"source" db:"source"`
	Accession         null.String `csv:"accession" db:"accession"`
	Status            null.String `csv:"status" db:"status"`
	Date              null.String `csv:"date" db:"date"`
	SignatureDesc     null.String `csv:"signature_desc" db:"signature_desc"`
	Protein           null.String `csv:"protein" db:"protein"`
	Start             null.Int    `csv:"start" db:"start"`
	End               null.Int    `csv:"end" db:"end"`
	DataSet           null.String `csv:"data_set" db:"data_set"`
}

type PathwayRow struct {
	Identifier string      `csv:"identifier" db:"identifier"`
	Name       null.String `csv:"name" db:"name"`
	DataSet    null.String `csv:"data_set" db:"data_set"`
}

// PathwayGeneRow is the many-to-many membership table.
type PathwayGeneRow struct {
	Pathway string `csv:"pathway" db:"pathway"`
	Gene    string `csv:"gene" db:"gene"`
}

type PhenotypeRow struct {
	PrimaryIdentifier string      `csv:"primary_identifier" db:"primary_identifier"`
	Organism          null.String `csv:"organism" db:"organism"`
	Strain            null.String `csv:"strain" db:"strain"`
	DataSet           null.String `csv:"data_set" db:"data_set"`
}

type OntologyTermRow struct {
	Identifier string `csv:"identifier" db:"identifier"`
}

type OntologyAnnotationRow struct {
	Term       string      `csv:"term" db:"term"`
	Phenotype  null.String `csv:"phenotype" db:"phenotype"`
	GeneFamily null.String `csv:"gene_family" db:"gene_family"`
}

type ChromosomeRow struct {
	SecondaryIdentifier string      `csv:"secondary_identifier" db:"secondary_identifier"`
	Organism            null.String `csv:"organism" db:"organism"`
	Strain              null.String `csv:"strain" db:"strain"`
}

// Pointer-safe identifier accessors for optional references.

func organismRef(o *model.Organism) null.String {
	if o == nil {
		return null.String{}
	}
	return null.StringFrom(o.Abbreviation)
}

func strainRef(s *model.Strain) null.String {
	if s == nil {
		return null.String{}
	}
	return null.StringFrom(s.Identifier)
}

func dataSetRef(d *model.DataSet) null.String {
	if d == nil {
		return null.String{}
	}
	return null.StringFrom(d.Name)
}

func familyRef(f *model.GeneFamily) null.String {
	if f == nil {
		return null.String{}
	}
	return null.StringFrom(f.Identifier)
}

func panGeneSetRef(s *model.PanGeneSet) null.String {
	if s == nil {
		return null.String{}
	}
	return null.StringFrom(s.Identifier)
}

func studyRef(s *model.GenotypingStudy) null.String {
	if s == nil {
		return null.String{}
	}
	return null.StringFrom(s.Identifier)
}

func chromosomeRef(c *model.Chromosome) null.String {
	if c == nil {
		return null.String{}
	}
	return null.StringFrom(c.SecondaryIdentifier)
}

func publicationRef(p *model.Publication) null.String {
	if p == nil {
		return null.String{}
	}
	if p.DOI.Valid {
		return p.DOI
	}
	return p.Title
}

func locStart(l *model.Location) null.Int {
	if l == nil {
		return null.Int{}
	}
	return null.IntFrom(int64(l.Start))
}

func locEnd(l *model.Location) null.Int {
	if l == nil {
		return null.Int{}
	}
	return null.IntFrom(int64(l.End))
}

func locChromosome(l *model.Location) null.String {
	if l == nil {
		return null.String{}
	}
	return chromosomeRef(l.Chromosome)
}

func matchRow(m *model.ProteinMatch) *ProteinMatchRow {
	row := &ProteinMatchRow{
		PrimaryIdentifier: m.PrimaryIdentifier,
		Source:            m.Source,
		Accession:         m.Accession,
		Status:            m.Status,
		Date:              m.Date,
		SignatureDesc:     m.SignatureDesc,
		Start:             locStart(m.Location),
		End:               locEnd(m.Location),
		DataSet:           dataSetRef(m.DataSet),
	}
	if m.Protein != nil {
		row.Protein = null.StringFrom(m.Protein.PrimaryIdentifier)
	}
	return row
}

func geneRow(g *model.Gene) *GeneRow {
	return &GeneRow{
		PrimaryIdentifier:   g.PrimaryIdentifier,
		SecondaryIdentifier: g.SecondaryIdentifier,
		Score:               g.Score,
		ScoreMeaning:        g.ScoreMeaning,
		Family:              familyRef(g.Family),
		PanGeneSet:          panGeneSetRef(g.PanGeneSet),
		Organism:            organismRef(g.Organism),
		Strain:              strainRef(g.Strain),
		DataSet:             dataSetRef(g.DataSet),
	}
}

func proteinRow(p *model.Protein) *ProteinRow {
	return &ProteinRow{
		PrimaryIdentifier:   p.PrimaryIdentifier,
		SecondaryIdentifier: p.SecondaryIdentifier,
		Score:               p.Score,
		ScoreMeaning:        p.ScoreMeaning,
		Family:              familyRef(p.Family),
		PanGeneSet:          panGeneSetRef(p.PanGeneSet),
		Organism:            organismRef(p.Organism),
		Strain:              strainRef(p.Strain),
		DataSet:             dataSetRef(p.DataSet),
	}
}
