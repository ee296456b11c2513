// Package model holds the normalized biological entity graph produced by
// the datastore converters, the per-run deduplicating registry that
// guarantees one instance per natural identifier, and the shared run
// context (organism, strain, dataset, publication).
package model

import "gopkg.in/guregu/null.v3"

// Organism is a shared context object, created at most once per distinct
// taxon within a run. Its natural key is the five-letter gensp
// abbreviation (e.g. "phalu").
type Organism struct {
	Abbreviation string
	TaxonID      null.String
	Name         null.String
}

// Strain is keyed by gensp.strain (e.g. "phalu.G27455").
type Strain struct {
	Identifier string
	Organism   *Organism
}

type DataSource struct {
	Name        string
	URL         null.String
	Description null.String
}

// DefaultLicence is stamped on a DataSet when the README does not set one.
const DefaultLicence = "Open Data Commons Open Database License (ODbL)"

type DataSet struct {
	Name        string
	Synopsis    null.String
	Description null.String
	URL         null.String
	Licence     string
	Version     null.String
	DataSource  *DataSource
	Publication *Publication
}

type Publication struct {
	DOI   null.String
	Title null.String
}

type GeneFamily struct {
	Identifier  string
	Version     null.String
	Description null.String
	Size        null.Int
	Genes       []*Gene
	Proteins    []*Protein
	DataSet     *DataSet
}

type PanGeneSet struct {
	Identifier string
	Version    null.String
	Genes      []*Gene
	Proteins   []*Protein
	DataSet    *DataSet
}

type Gene struct {
	PrimaryIdentifier   string
	SecondaryIdentifier null.String
	Score               null.Float
	ScoreMeaning        null.String
	Family              *GeneFamily
	PanGeneSet          *PanGeneSet
	Pathways            []*Pathway
	Organism            *Organism
	Strain              *Strain
	DataSet             *DataSet
}

type Protein struct {
	PrimaryIdentifier   string
	SecondaryIdentifier null.String
	Score               null.Float
	ScoreMeaning        null.String
	Family              *GeneFamily
	PanGeneSet          *PanGeneSet
	Organism            *Organism
	Strain              *Strain
	DataSet             *DataSet
}

type GenotypingStudy struct {
	Identifier   string
	Synopsis     null.String
	Description  null.String
	Contributors null.String
	Accession    null.String
	Platform     null.String
	Samples      []*GenotypingSample
	DataSet      *DataSet
}

type GenotypingSample struct {
	Identifier string
	Study      *GenotypingStudy
	Organism   *Organism
	Strain     *Strain
	DataSet    *DataSet
}

type GeneticMarker struct {
	Identifier string
	Chromosome *Chromosome
	Location   *Location
	Organism   *Organism
	Strain     *Strain
	DataSet    *DataSet
}

type GenotypingRecord struct {
	Identifier string
	Ref        string
	Alt        string
	Qual       null.Float
	Filter     null.String
	Info       null.String
	Marker     *GeneticMarker
	Study      *GenotypingStudy
}

// Genotype is the per-(sample, record) call value. Its natural key is the
// composite of its sample and record identifiers.
type Genotype struct {
	Key         string
	Value       string
	Likelihoods null.String
	Sample      *GenotypingSample
	Record      *GenotypingRecord
}

type ProteinMatch struct {
	PrimaryIdentifier string
	Source            null.String
	Accession         null.String
	Status            null.String
	Date              null.String
	SignatureDesc     null.String
	Protein           *Protein
	Location          *Location
	DataSet           *DataSet
}

// ProteinHmmMatch carries the same attributes as ProteinMatch but is a
// distinct warehouse class, kept in its own registry.
type ProteinHmmMatch struct {
	ProteinMatch
}

type Pathway struct {
	Identifier string
	Name       null.String
	Genes      []*Gene
	DataSet    *DataSet
}

type Phenotype struct {
	PrimaryIdentifier string
	Organism          *Organism
	Strain            *Strain
	DataSet           *DataSet
}

type OntologyTerm struct {
	Identifier string
}

// OntologyAnnotation joins an ontology term to its subject. Exactly one
// of Phenotype or GeneFamily is set.
type OntologyAnnotation struct {
	Key        string
	Term       *OntologyTerm
	Phenotype  *Phenotype
	GeneFamily *GeneFamily
}

// Chromosome is created lazily per distinct contig seen in positional
// records.
type Chromosome struct {
	SecondaryIdentifier string
	Organism            *Organism
	Strain              *Strain
}

type Location struct {
	Key        string
	Start      int
	End        int
	Chromosome *Chromosome
}

// Context is the run-scoped shared context resolved from the README
// metadata record. It is immutable after metadata load and handed by
// reference into every registry and finalize call.
type Context struct {
	DataSource  *DataSource
	DataSet     *DataSet
	Organism    *Organism
	Strain      *Strain
	Publication *Publication
}

// AddGene appends g, skipping identity duplicates.
func (f *GeneFamily) AddGene(g *Gene) {
	for _, have := range f.Genes {
		if have == g {
			return
		}
	}
	f.Genes = append(f.Genes, g)
}

func (f *GeneFamily) AddProtein(p *Protein) {
	for _, have := range f.Proteins {
		if have == p {
			return
		}
	}
	f.Proteins = append(f.Proteins, p)
}

func (s *PanGeneSet) AddGene(g *Gene) {
	for _, have := range s.Genes {
		if have == g {
			return
		}
	}
	s.Genes = append(s.Genes, g)
}

func (s *PanGeneSet) AddProtein(p *Protein) {
	for _, have := range s.Proteins {
		if have == p {
			return
		}
	}
	s.Proteins = append(s.Proteins, p)
}

func (p *Pathway) AddGene(g *Gene) {
	for _, have := range p.Genes {
		if have == g {
			return
		}
	}
	p.Genes = append(p.Genes, g)
}

func (g *Gene) AddPathway(p *Pathway) {
	for _, have := range g.Pathways {
		if have == p {
			return
		}
	}
	g.Pathways = append(g.Pathways, p)
}

func (s *GenotypingStudy) AddSample(sample *GenotypingSample) {
	for _, have := range s.Samples {
		if have == sample {
			return
		}
	}
	s.Samples = append(s.Samples, sample)
}
