package model

import (
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/legumeinfo/lisgraph/lisfile"
)

// Registry is the sole authority for entity identity within one run: for
// every (entity kind, natural key) pair it hands out exactly one live
// instance, so later lines attach attributes to the instance created by
// earlier lines. Insertion order is preserved per kind so emission is
// deterministic. A Registry is not safe for concurrent use; parallel
// runs each get their own.
type Registry struct {
	organisms    map[string]*Organism
	strains      map[string]*Strain
	geneFamilies map[string]*GeneFamily
	panGeneSets  map[string]*PanGeneSet
	genes        map[string]*Gene
	proteins     map[string]*Protein
	studies      map[string]*GenotypingStudy
	samples      map[string]*GenotypingSample
	markers      map[string]*GeneticMarker
	records      map[string]*GenotypingRecord
	genotypes    map[string]*Genotype
	matches      map[string]*ProteinMatch
	hmmMatches   map[string]*ProteinHmmMatch
	pathways     map[string]*Pathway
	phenotypes   map[string]*Phenotype
	terms        map[string]*OntologyTerm
	annotations  map[string]*OntologyAnnotation
	chromosomes  map[string]*Chromosome
	locations    map[string]*Location

	organismOrder   []*Organism
	strainOrder     []*Strain
	familyOrder     []*GeneFamily
	panGeneSetOrder []*PanGeneSet
	geneOrder       []*Gene
	proteinOrder    []*Protein
	studyOrder      []*GenotypingStudy
	sampleOrder     []*GenotypingSample
	markerOrder     []*GeneticMarker
	recordOrder     []*GenotypingRecord
	genotypeOrder   []*Genotype
	matchOrder      []*ProteinMatch
	hmmMatchOrder   []*ProteinHmmMatch
	pathwayOrder    []*Pathway
	phenotypeOrder  []*Phenotype
	termOrder       []*OntologyTerm
	annotationOrder []*OntologyAnnotation
	chromosomeOrder []*Chromosome
	locationOrder   []*Location
}

func NewRegistry() *Registry {
	return &Registry{
		organisms:    map[string]*Organism{},
		strains:      map[string]*Strain{},
		geneFamilies: map[string]*GeneFamily{},
		panGeneSets:  map[string]*PanGeneSet{},
		genes:        map[string]*Gene{},
		proteins:     map[string]*Protein{},
		studies:      map[string]*GenotypingStudy{},
		samples:      map[string]*GenotypingSample{},
		markers:      map[string]*GeneticMarker{},
		records:      map[string]*GenotypingRecord{},
		genotypes:    map[string]*Genotype{},
		matches:      map[string]*ProteinMatch{},
		hmmMatches:   map[string]*ProteinHmmMatch{},
		pathways:     map[string]*Pathway{},
		phenotypes:   map[string]*Phenotype{},
		terms:        map[string]*OntologyTerm{},
		annotations:  map[string]*OntologyAnnotation{},
		chromosomes:  map[string]*Chromosome{},
		locations:    map[string]*Location{},
	}
}

// Organism returns the one Organism for a gensp abbreviation, creating it
// on first sight.
func (r *Registry) Organism(gensp string) *Organism {
	if o, exists := r.organisms[gensp]; exists {
		return o
	}
	o := &Organism{Abbreviation: gensp}
	r.organisms[gensp] = o
	r.organismOrder = append(r.organismOrder, o)

	return o
}

// Strain is keyed by gensp.strain so equal strain names under different
// organisms stay distinct.
func (r *Registry) Strain(gensp, strain string) *Strain {
	key := gensp + "." + strain
	if s, exists := r.strains[key]; exists {
		return s
	}
	s := &Strain{Identifier: strain, Organism: r.Organism(gensp)}
	r.strains[key] = s
	r.strainOrder = append(r.strainOrder, s)

	return s
}

func (r *Registry) GeneFamily(id string) *GeneFamily {
	if f, exists := r.geneFamilies[id]; exists {
		return f
	}
	f := &GeneFamily{Identifier: id}
	r.geneFamilies[id] = f
	r.familyOrder = append(r.familyOrder, f)

	return f
}

func (r *Registry) PanGeneSet(id string) *PanGeneSet {
	if s, exists := r.panGeneSets[id]; exists {
		return s
	}
	s := &PanGeneSet{Identifier: id}
	r.panGeneSets[id] = s
	r.panGeneSetOrder = append(r.panGeneSetOrder, s)

	return s
}

func (r *Registry) Gene(id string) *Gene {
	if g, exists := r.genes[id]; exists {
		return g
	}
	g := &Gene{PrimaryIdentifier: id}
	r.genes[id] = g
	r.geneOrder = append(r.geneOrder, g)

	return g
}

// Protein stamps the derived parent identifier (the gene-level
// identifier, with the isoform segment dropped) as the secondary
// identifier on first creation.
func (r *Registry) Protein(id string) *Protein {
	if p, exists := r.proteins[id]; exists {
		return p
	}
	p := &Protein{PrimaryIdentifier: id}
	if parent := lisfile.ParentIdent(id); parent != id {
		p.SecondaryIdentifier = null.StringFrom(parent)
	}
	r.proteins[id] = p
	r.proteinOrder = append(r.proteinOrder, p)

	return p
}

func (r *Registry) GenotypingStudy(id string) *GenotypingStudy {
	if s, exists := r.studies[id]; exists {
		return s
	}
	s := &GenotypingStudy{Identifier: id}
	r.studies[id] = s
	r.studyOrder = append(r.studyOrder, s)

	return s
}

func (r *Registry) GenotypingSample(id string) *GenotypingSample {
	if s, exists := r.samples[id]; exists {
		return s
	}
	s := &GenotypingSample{Identifier: id}
	r.samples[id] = s
	r.sampleOrder = append(r.sampleOrder, s)

	return s
}

func (r *Registry) GeneticMarker(id string) *GeneticMarker {
	if m, exists := r.markers[id]; exists {
		return m
	}
	m := &GeneticMarker{Identifier: id}
	r.markers[id] = m
	r.markerOrder = append(r.markerOrder, m)

	return m
}

func (r *Registry) GenotypingRecord(id string) *GenotypingRecord {
	if rec, exists := r.records[id]; exists {
		return rec
	}
	rec := &GenotypingRecord{Identifier: id}
	r.records[id] = rec
	r.recordOrder = append(r.recordOrder, rec)

	return rec
}

// Genotype is keyed by the (sample, record) composite.
func (r *Registry) Genotype(sampleID, recordID string) *Genotype {
	key := sampleID + "|" + recordID
	if g, exists := r.genotypes[key]; exists {
		return g
	}
	g := &Genotype{Key: key}
	r.genotypes[key] = g
	r.genotypeOrder = append(r.genotypeOrder, g)

	return g
}

func (r *Registry) ProteinMatch(id string) *ProteinMatch {
	if m, exists := r.matches[id]; exists {
		return m
	}
	m := &ProteinMatch{PrimaryIdentifier: id}
	r.matches[id] = m
	r.matchOrder = append(r.matchOrder, m)

	return m
}

func (r *Registry) ProteinHmmMatch(id string) *ProteinHmmMatch {
	if m, exists := r.hmmMatches[id]; exists {
		return m
	}
	m := &ProteinHmmMatch{ProteinMatch: ProteinMatch{PrimaryIdentifier: id}}
	r.hmmMatches[id] = m
	r.hmmMatchOrder = append(r.hmmMatchOrder, m)

	return m
}

func (r *Registry) Pathway(id string) *Pathway {
	if p, exists := r.pathways[id]; exists {
		return p
	}
	p := &Pathway{Identifier: id}
	r.pathways[id] = p
	r.pathwayOrder = append(r.pathwayOrder, p)

	return p
}

func (r *Registry) Phenotype(id string) *Phenotype {
	if p, exists := r.phenotypes[id]; exists {
		return p
	}
	p := &Phenotype{PrimaryIdentifier: id}
	r.phenotypes[id] = p
	r.phenotypeOrder = append(r.phenotypeOrder, p)

	return p
}

func (r *Registry) OntologyTerm(id string) *OntologyTerm {
	if t, exists := r.terms[id]; exists {
		return t
	}
	t := &OntologyTerm{Identifier: id}
	r.terms[id] = t
	r.termOrder = append(r.termOrder, t)

	return t
}

func (r *Registry) OntologyAnnotation(subjectID, termID string) *OntologyAnnotation {
	key := subjectID + "|" + termID
	if a, exists := r.annotations[key]; exists {
		return a
	}
	a := &OntologyAnnotation{Key: key}
	r.annotations[key] = a
	r.annotationOrder = append(r.annotationOrder, a)

	return a
}

func (r *Registry) Chromosome(contig string) *Chromosome {
	if c, exists := r.chromosomes[contig]; exists {
		return c
	}
	c := &Chromosome{SecondaryIdentifier: contig}
	r.chromosomes[contig] = c
	r.chromosomeOrder = append(r.chromosomeOrder, c)

	return c
}

func (r *Registry) Location(key string) *Location {
	if l, exists := r.locations[key]; exists {
		return l
	}
	l := &Location{Key: key}
	r.locations[key] = l
	r.locationOrder = append(r.locationOrder, l)

	return l
}

// Ordered accessors, used by finalize/emit.

func (r *Registry) Organisms() []*Organism                 { return r.organismOrder }
func (r *Registry) Strains() []*Strain                     { return r.strainOrder }
func (r *Registry) GeneFamilies() []*GeneFamily            { return r.familyOrder }
func (r *Registry) PanGeneSets() []*PanGeneSet             { return r.panGeneSetOrder }
func (r *Registry) Genes() []*Gene                         { return r.geneOrder }
func (r *Registry) Proteins() []*Protein                   { return r.proteinOrder }
func (r *Registry) GenotypingStudies() []*GenotypingStudy  { return r.studyOrder }
func (r *Registry) GenotypingSamples() []*GenotypingSample { return r.sampleOrder }
func (r *Registry) GeneticMarkers() []*GeneticMarker       { return r.markerOrder }
func (r *Registry) GenotypingRecords() []*GenotypingRecord { return r.recordOrder }
func (r *Registry) Genotypes() []*Genotype                 { return r.genotypeOrder }
func (r *Registry) ProteinMatches() []*ProteinMatch        { return r.matchOrder }
func (r *Registry) ProteinHmmMatches() []*ProteinHmmMatch  { return r.hmmMatchOrder }
func (r *Registry) Pathways() []*Pathway                   { return r.pathwayOrder }
func (r *Registry) Phenotypes() []*Phenotype               { return r.phenotypeOrder }
func (r *Registry) OntologyTerms() []*OntologyTerm         { return r.termOrder }
func (r *Registry) OntologyAnnotations() []*OntologyAnnotation {
	return r.annotationOrder
}
func (r *Registry) Chromosomes() []*Chromosome { return r.chromosomeOrder }
func (r *Registry) Locations() []*Location     { return r.locationOrder }

// Counts reports per-kind entity counts for the end-of-run summary.
func (r *Registry) Counts() map[string]int {
	return map[string]int{
		"organisms":         len(r.organismOrder),
		"strains":           len(r.strainOrder),
		"geneFamilies":      len(r.familyOrder),
		"panGeneSets":       len(r.panGeneSetOrder),
		"genes":             len(r.geneOrder),
		"proteins":          len(r.proteinOrder),
		"genotypingStudies": len(r.studyOrder),
		"genotypingSamples": len(r.sampleOrder),
		"geneticMarkers":    len(r.markerOrder),
		"genotypingRecords": len(r.recordOrder),
		"genotypes":         len(r.genotypeOrder),
		"proteinMatches":    len(r.matchOrder),
		"proteinHmmMatches": len(r.hmmMatchOrder),
		"pathways":          len(r.pathwayOrder),
		"phenotypes":        len(r.phenotypeOrder),
		"ontologyTerms":     len(r.termOrder),
		"annotations":       len(r.annotationOrder),
		"chromosomes":       len(r.chromosomeOrder),
		"locations":         len(r.locationOrder),
	}
}

// contextFor derives per-entity organism and strain from the conventional
// gensp.strain.gnm... identifier prefix when the run context does not
// carry them (multi-organism family files have no single README
// organism). The second return is false when the identifier does not
// follow the convention.
func (r *Registry) contextFor(id string) (*Organism, *Strain, bool) {
	parts := strings.Split(id, ".")
	if len(parts) < 4 {
		return nil, nil, false
	}

	org := r.Organism(parts[0])
	strain := r.Strain(parts[0], parts[1])

	return org, strain, true
}
